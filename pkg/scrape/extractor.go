package scrape

import (
	"context"

	"pricetracker/pkg/domain"
)

// Page is the read surface of a rendered product page that extractors query.
// It is intentionally narrow so strategies can be exercised against fixture
// pages in tests. Close releases the underlying browser page and must be
// called exactly once on every path.
//
//go:generate mockgen -package mockscrape -source=extractor.go -destination=mock/mockscrape.go *
type Page interface {
	// Text returns the trimmed text content of the first element matching the
	// CSS selector. A missing element is an error.
	Text(selector string) (string, error)
	// Attribute returns the value of the named attribute on the first element
	// matching the CSS selector. A missing element or attribute is an error.
	Attribute(selector, attribute string) (string, error)
	// Close releases the page resource.
	Close() error
}

// NavigablePage is a Page that has not been pointed at a URL yet. The
// session manager hands these out; the gateway navigates them.
type NavigablePage interface {
	Page

	// Navigate loads the given URL and returns the HTTP status of the
	// document response. The wait is bounded by the session's navigation
	// timeout and by ctx.
	Navigate(ctx context.Context, url string) (int, error)
}

// Extractor turns a rendered page into a name+price result. Implementations
// are per-site strategies; each one closes the page on success and failure
// paths alike.
type Extractor interface {
	Extract(page Page) (domain.ExtractionResult, error)
}

// Registry maps registrable domains to extraction strategies. It is
// populated once at process start and read-only afterwards.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{extractors: make(map[string]Extractor)}
}

// Register binds an extractor to a registrable domain.
func (r *Registry) Register(domainName string, e Extractor) {
	r.extractors[domainName] = e
}

// Resolve returns the extractor for the given registrable domain, if any.
func (r *Registry) Resolve(domainName string) (Extractor, bool) {
	e, ok := r.extractors[domainName]

	return e, ok
}

// DefaultRegistry returns a registry with all supported site strategies.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("amazon", amazonExtractor{})
	r.Register("mercadolivre", mercadoLivreExtractor{})
	r.Register("olx", olxExtractor{})
	r.Register("magazineluiza", magazineLuizaExtractor{})
	r.Register("relogioonline", clockExtractor{})

	return r
}
