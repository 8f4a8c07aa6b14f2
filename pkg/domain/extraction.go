package domain

import "github.com/shopspring/decimal"

// ExtractionResult is the outcome of scraping a product page. It is
// ephemeral and never persisted as such. Both fields are mandatory; a
// partial result is reported as an extraction failure instead.
type ExtractionResult struct {
	// Name is the product display name found on the page.
	Name string
	// Price is the current price found on the page.
	Price decimal.Decimal
}
