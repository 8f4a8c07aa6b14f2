package tracker

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"pricetracker/internal/config"
	"pricetracker/pkg/domain"
	"pricetracker/pkg/logger"
	"pricetracker/pkg/metrics"
	"pricetracker/pkg/notify"
	"pricetracker/pkg/scrape"
	"pricetracker/pkg/storage"

	"go.uber.org/zap"
)

// Options configure how a tracking pass selects and paces its work.
type Options struct {
	// StaleAfter is how old a product's last check must be before the pass
	// picks it up again.
	StaleAfter time.Duration
	// JitterMin and JitterMax bound the random delay applied to each product
	// check. Spreading the checks out keeps the target sites from seeing a
	// burst of requests on every tick.
	JitterMin time.Duration
	JitterMax time.Duration
	// BatchLimit caps how many stale products a single pass picks up.
	// Zero means no cap.
	BatchLimit uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		StaleAfter: cfg.Tracker.StaleAfter,
		JitterMin:  cfg.Tracker.JitterMin,
		JitterMax:  cfg.Tracker.JitterMax,
		BatchLimit: cfg.Tracker.BatchLimit,
	}
}

// checkResult is the fan-in message produced by one product check.
type checkResult struct {
	dropped bool
	err     error
}

// tracker is the concrete implementation of the Tracker interface. It
// coordinates the storage layer, the scrape gateway and the mailer.
type tracker struct {
	options Options
	storage storage.Storage
	scraper scrape.Scraper
	mailer  notify.Mailer
	metrics *metrics.TrackerMetrics

	// sleep waits for the given duration or until ctx is done. Swapped out in
	// tests so jitter does not slow them down.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a Tracker backed by the provided collaborators. trackerMetrics
// may be nil, in which case no instruments are recorded.
func New(storage storage.Storage,
	scraper scrape.Scraper,
	mailer notify.Mailer,
	trackerMetrics *metrics.TrackerMetrics,
	options Options) Tracker {
	return &tracker{
		options: options,
		storage: storage,
		scraper: scraper,
		mailer:  mailer,
		metrics: trackerMetrics,
		sleep:   sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint: wrapcheck
	case <-time.After(d):
		return nil
	}
}

// jitter returns a uniformly random delay in [JitterMin, JitterMax].
func (t *tracker) jitter() time.Duration {
	span := t.options.JitterMax - t.options.JitterMin
	if span <= 0 {
		return t.options.JitterMin
	}

	return t.options.JitterMin + time.Duration(rand.Int63n(int64(span))) //nolint: gosec
}

// RunOnce performs a single tracking pass. The browser session is opened once
// per pass; each stale product is then checked in its own goroutine after a
// random jitter delay. A product failure never affects its siblings.
func (t *tracker) RunOnce(ctx context.Context) (Summary, error) {
	cutoff := time.Now().UTC().Add(-t.options.StaleAfter)
	products, err := t.storage.StaleProducts(ctx, cutoff, t.options.BatchLimit)
	if err != nil {
		return Summary{}, fmt.Errorf("could not list stale products: %w", err)
	}
	if len(products) == 0 {
		return Summary{}, nil
	}

	if err := t.scraper.EnsureOpen(ctx); err != nil {
		return Summary{}, fmt.Errorf("could not open browser session: %w", err)
	}

	results := make(chan checkResult, len(products))
	var wg sync.WaitGroup
	for _, product := range products {
		wg.Add(1)
		go func(product domain.Product) {
			defer wg.Done()

			if err := t.sleep(ctx, t.jitter()); err != nil {
				results <- checkResult{err: err}

				return
			}

			dropped, err := t.check(ctx, product)
			results <- checkResult{dropped: dropped, err: err}
		}(product)
	}

	wg.Wait()
	close(results)

	summary := Summary{Checked: len(products)}
	for res := range results {
		if res.err != nil {
			summary.Failed++

			continue
		}

		summary.Succeeded++
		if res.dropped {
			summary.PriceDrops++
		}
	}

	logger.Info(ctx, "tracking pass finished",
		zap.Int("checked", summary.Checked),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Int("priceDrops", summary.PriceDrops))

	return summary, nil
}

// check re-scrapes a single product and applies the price rules: a strictly
// lower price replaces the stored one and notifies the owner, anything else
// only advances the check timestamp.
func (t *tracker) check(ctx context.Context, product domain.Product) (dropped bool, err error) {
	ctx = logger.WithFields(ctx,
		zap.String("productID", product.ID.String()),
		zap.String("URL", product.URL))

	start := time.Now()
	outcome := "error"
	defer func() {
		if t.metrics != nil {
			t.metrics.RecordCheck(ctx, outcome, time.Since(start).Seconds())
		}
	}()

	res, err := t.scraper.Scrape(ctx, product.URL)
	if err != nil {
		logger.Error(ctx, "error checking product price", zap.Error(err))

		return false, fmt.Errorf("could not scrape product: %w", err)
	}

	if res.Price.LessThan(product.CurrentPrice) {
		if _, err := t.storage.UpdatePrice(ctx, product.ID, res.Price); err != nil {
			logger.Error(ctx, "error updating product price", zap.Error(err))

			return false, fmt.Errorf("could not update price: %w", err)
		}

		outcome = "price_drop"
		if t.metrics != nil {
			t.metrics.PriceDrops.Add(ctx, 1)
		}
		logger.Info(ctx, "price drop detected",
			zap.String("oldPrice", product.CurrentPrice.StringFixed(2)),
			zap.String("newPrice", res.Price.StringFixed(2)))

		// The price change is already committed; a mail failure must not
		// mark the check as failed.
		if err := t.mailer.PriceDrop(ctx, product, res.Price); err != nil {
			logger.Error(ctx, "error sending price drop mail", zap.Error(err))
		}

		return true, nil
	}

	if err := t.storage.TouchChecked(ctx, product.ID); err != nil {
		logger.Error(ctx, "error touching product", zap.Error(err))

		return false, fmt.Errorf("could not touch product: %w", err)
	}

	outcome = "unchanged"

	return false, nil
}
