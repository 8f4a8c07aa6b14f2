// Package metrics centralizes the application's OpenTelemetry instruments,
// exported through the process-wide Prometheus registry.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewMeterProvider creates an OpenTelemetry meter provider whose instruments
// are scraped from the default Prometheus registry.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// TrackerMetrics holds the instruments recorded by the price check loop.
type TrackerMetrics struct {
	// Checks counts scrape attempts, labelled by outcome.
	Checks metric.Int64Counter
	// Duration observes how long a single product check takes, in seconds.
	Duration metric.Float64Histogram
	// PriceDrops counts confirmed price drops.
	PriceDrops metric.Int64Counter
}

// NewTrackerMetrics registers the price check instruments on the given
// provider.
func NewTrackerMetrics(mp metric.MeterProvider) (*TrackerMetrics, error) {
	meter := mp.Meter("pricetracker/tracker")

	checks, err := meter.Int64Counter("tracker_checks_total",
		metric.WithDescription("Number of product price checks, labelled by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create checks counter: %w", err)
	}

	duration, err := meter.Float64Histogram("tracker_check_duration_seconds",
		metric.WithDescription("Duration of a single product price check."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	drops, err := meter.Int64Counter("tracker_price_drops_total",
		metric.WithDescription("Number of confirmed price drops."))
	if err != nil {
		return nil, fmt.Errorf("could not create price drops counter: %w", err)
	}

	return &TrackerMetrics{
		Checks:     checks,
		Duration:   duration,
		PriceDrops: drops,
	}, nil
}

// RecordCheck records one finished product check with the given outcome.
func (m *TrackerMetrics) RecordCheck(ctx context.Context, outcome string, seconds float64) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.Checks.Add(ctx, 1, attrs)
	m.Duration.Record(ctx, seconds, attrs)
}

// RegisterBrowserPages exposes the number of currently borrowed browser pages
// as an observable gauge.
func RegisterBrowserPages(mp metric.MeterProvider, openPages func() int) error {
	meter := mp.Meter("pricetracker/browser")

	_, err := meter.Int64ObservableGauge("browser_open_pages",
		metric.WithDescription("Number of browser pages currently in use."),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(openPages()))

			return nil
		}))
	if err != nil {
		return fmt.Errorf("could not create open pages gauge: %w", err)
	}

	return nil
}
