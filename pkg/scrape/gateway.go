package scrape

import (
	"context"

	"pricetracker/pkg/domain"
	"pricetracker/pkg/serrors"
)

// Scraper is the abstraction consumed by the tracking orchestrator and the
// product creation flow.
//
//go:generate mockgen -package mockscrape -source=gateway.go -destination=mock/mockgateway.go *
type Scraper interface {
	// EnsureOpen makes sure the shared browser session is ready. The tracker
	// calls it once per batch before fanning out scrape attempts.
	EnsureOpen(ctx context.Context) error
	// Scrape fetches the page at url and runs the matching extraction
	// strategy on it.
	Scrape(ctx context.Context, url string) (domain.ExtractionResult, error)
}

// PageSource hands out browser pages. Implemented by *Session.
type PageSource interface {
	EnsureOpen(ctx context.Context) error
	NewPage() (NavigablePage, error)
}

// Gateway resolves a URL to its extraction strategy, renders the page
// through the shared browser session and validates the HTTP response before
// any extractor runs.
type Gateway struct {
	session  PageSource
	registry *Registry
}

var _ Scraper = (*Gateway)(nil)

// NewGateway returns a gateway backed by the given session and registry.
func NewGateway(session PageSource, registry *Registry) *Gateway {
	return &Gateway{session: session, registry: registry}
}

// EnsureOpen opens the shared browser session if needed.
func (g *Gateway) EnsureOpen(ctx context.Context) error {
	return g.session.EnsureOpen(ctx)
}

// resolve returns the extractor for url's registrable domain. Unsupported
// domains are rejected here, before any network activity.
func (g *Gateway) resolve(url string) (Extractor, error) {
	name, err := RegistrableDomain(url)
	if err != nil {
		return nil, serrors.Wrap(ErrUnsupportedDomain, err, "invalid product URL")
	}

	extractor, ok := g.registry.Resolve(name)
	if !ok {
		return nil, serrors.With(ErrUnsupportedDomain, "no extractor for domain %q", name)
	}

	return extractor, nil
}

// Fetch obtains a rendered page for url. The caller owns the returned page
// and must close it, normally by running an extractor on it.
func (g *Gateway) Fetch(ctx context.Context, url string) (NavigablePage, error) {
	if _, err := g.resolve(url); err != nil {
		return nil, err
	}

	if err := g.session.EnsureOpen(ctx); err != nil {
		return nil, err
	}

	page, err := g.session.NewPage()
	if err != nil {
		return nil, err
	}

	status, err := page.Navigate(ctx, url)
	if err != nil {
		_ = page.Close()

		return nil, serrors.Wrap(ErrNavigationFailed, err, "could not load %q", url)
	}
	if status < 200 || status >= 300 {
		_ = page.Close()

		return nil, serrors.With(ErrNavigationFailed, "loading %q returned status %d", url, status)
	}

	return page, nil
}

// Scrape fetches url and runs the matching extractor on the rendered page.
// The extractor releases the page on all paths.
func (g *Gateway) Scrape(ctx context.Context, url string) (domain.ExtractionResult, error) {
	extractor, err := g.resolve(url)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	page, err := g.Fetch(ctx, url)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	return extractor.Extract(page)
}
