package tracker

import (
	"context"
)

// Summary reports the outcome of a single tracking pass.
type Summary struct {
	// Checked is the number of stale products picked up by the pass.
	Checked int
	// Succeeded counts products whose check finished without error,
	// regardless of whether the price moved.
	Succeeded int
	// Failed counts products whose check returned an error.
	Failed int
	// PriceDrops counts products whose price was confirmed lower and updated.
	PriceDrops int
}

// Tracker re-checks stale products and notifies owners about price drops.
type Tracker interface {
	// RunOnce performs a single tracking pass: it selects the products whose
	// last check is older than the staleness threshold, scrapes each of them
	// concurrently and applies the price-comparison rules. Per-product
	// failures are absorbed into the summary; an error is returned only when
	// the pass as a whole could not run.
	RunOnce(ctx context.Context) (Summary, error)
}
