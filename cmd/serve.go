package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"pricetracker/internal/api"
	"pricetracker/internal/api/handler/v1handler"
	"pricetracker/internal/config"
	"pricetracker/internal/product"
	"pricetracker/internal/tracker"
	"pricetracker/pkg/logger"
	"pricetracker/pkg/metrics"
	"pricetracker/pkg/notify"
	"pricetracker/pkg/scrape"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and the price tracking loop",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			session := scrape.NewSession(scrape.SessionOptions{
				BinPath:           cfg.Browser.BinPath,
				Headless:          cfg.Browser.Headless,
				NoSandbox:         cfg.Browser.NoSandbox,
				NavigationTimeout: cfg.Browser.NavigationTimeout,
				QueryTimeout:      cfg.Browser.QueryTimeout,
			})
			gateway := scrape.NewGateway(session, scrape.DefaultRegistry())

			mailer := notify.NewSMTPMailer(notify.SMTPOptions{
				Host:     cfg.SMTP.Host,
				Port:     cfg.SMTP.Port,
				Username: cfg.SMTP.Username,
				Password: cfg.SMTP.Password,
				From:     cfg.SMTP.From,
			})

			mp, err := metrics.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			trackerMetrics, err := metrics.NewTrackerMetrics(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create tracker metrics", zap.Error(err))
			}
			if err := metrics.RegisterBrowserPages(mp, session.OpenPages); err != nil {
				logger.Fatal(ctx, "could not register browser metrics", zap.Error(err))
			}

			products := product.New(strg, gateway, mailer, product.NewOptions(cfg))
			trk := tracker.New(strg, gateway, mailer, trackerMetrics, tracker.NewOptions(cfg))

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{Products: products},
			})

			// a tick that is still scraping must not overlap with the next one
			crn := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
			crn.Schedule(cron.Every(cfg.Tracker.TickInterval), cron.FuncJob(func() {
				if _, err := trk.RunOnce(ctx); err != nil {
					logger.Error(ctx, "tracking pass failed", zap.Error(err))
				}
			}))
			crn.Schedule(cron.Every(cfg.Browser.IdleSweepInterval), cron.FuncJob(func() {
				session.CloseIfIdle(ctx)
			}))
			crn.Start()

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			// let a running tick finish before tearing down the browser
			<-crn.Stop().Done()
			session.Close(shutdownCtx)
		},
	}

	return cmd
}
