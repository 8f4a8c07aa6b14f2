package main

import (
	"context"
	"fmt"

	"pricetracker/internal/config"
	"pricetracker/pkg/logger"
	"pricetracker/pkg/scrape"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scrapeCommand constructs the 'scrape' subcommand that extracts the name and
// price of a single product page and prints them. Useful when adding support
// for a new site.
func scrapeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape <url>",
		Short: "Scrapes a single product page and prints the extracted name and price",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			session := scrape.NewSession(scrape.SessionOptions{
				BinPath:           cfg.Browser.BinPath,
				Headless:          cfg.Browser.Headless,
				NoSandbox:         cfg.Browser.NoSandbox,
				NavigationTimeout: cfg.Browser.NavigationTimeout,
				QueryTimeout:      cfg.Browser.QueryTimeout,
			})
			defer session.Close(ctx)

			gateway := scrape.NewGateway(session, scrape.DefaultRegistry())

			res, err := gateway.Scrape(ctx, args[0])
			if err != nil {
				logger.Fatal(ctx, "could not scrape product page", zap.Error(err))
			}

			fmt.Printf("name:  %s\nprice: %s\n", res.Name, res.Price.StringFixed(2)) //nolint: forbidigo
		},
	}

	return cmd
}
