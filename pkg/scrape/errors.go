package scrape

import "pricetracker/pkg/serrors"

// Semantic kinds for scrape failures. All of them except ErrUnsupportedDomain
// are transient from the tracker's point of view and are retried on the next
// scheduled tick.
var (
	// ErrUnsupportedDomain indicates no extractor is registered for the URL's
	// registrable domain. Tracking such a URL is permanently rejected.
	ErrUnsupportedDomain = serrors.NewKind("UNSUPPORTED_DOMAIN")
	// ErrNavigationFailed indicates the page did not load successfully.
	ErrNavigationFailed = serrors.NewKind("NAVIGATION_FAILED")
	// ErrNameNotFound indicates the page loaded but the name element is missing.
	ErrNameNotFound = serrors.NewKind("NAME_NOT_FOUND")
	// ErrPriceNotFound indicates the page loaded but the price element is missing.
	ErrPriceNotFound = serrors.NewKind("PRICE_NOT_FOUND")
	// ErrPriceUnparsable indicates the price element was found but its text
	// could not be converted to a decimal value.
	ErrPriceUnparsable = serrors.NewKind("PRICE_UNPARSABLE")
	// ErrBrowserUnavailable indicates the shared browser session could not be
	// opened. Fatal for the current attempt, retryable on the next one.
	ErrBrowserUnavailable = serrors.NewKind("BROWSER_UNAVAILABLE")
)
