package scrape

import (
	"strings"

	"pricetracker/pkg/domain"
	"pricetracker/pkg/serrors"
)

// textOf returns the trimmed text of the first element matching selector.
// Missing elements and empty text both count as absent.
func textOf(page Page, selector string) (string, bool) {
	s, err := page.Text(selector)
	if err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)

	return s, s != ""
}

// amazonExtractor handles Amazon product pages, where the price is split
// across whole and fraction elements.
type amazonExtractor struct{}

func (amazonExtractor) Extract(page Page) (domain.ExtractionResult, error) {
	defer func() { _ = page.Close() }()

	name, ok := textOf(page, "#productTitle")
	if !ok {
		return domain.ExtractionResult{}, serrors.With(ErrNameNotFound, "amazon: product title not found")
	}

	whole, wok := textOf(page, ".a-price-whole")
	fraction, fok := textOf(page, ".a-price-fraction")
	if !wok || !fok {
		return domain.ExtractionResult{}, serrors.With(ErrPriceNotFound, "amazon: price fragments not found")
	}

	price, err := ParsePriceParts(whole, fraction)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	return domain.ExtractionResult{Name: name, Price: price}, nil
}

// mercadoLivreExtractor handles Mercado Livre pages, where the price lives
// in a meta element's content attribute rather than visible text.
type mercadoLivreExtractor struct{}

func (mercadoLivreExtractor) Extract(page Page) (domain.ExtractionResult, error) {
	defer func() { _ = page.Close() }()

	name, ok := textOf(page, ".ui-pdp-title")
	if !ok {
		return domain.ExtractionResult{}, serrors.With(ErrNameNotFound, "mercadolivre: product title not found")
	}

	raw, err := page.Attribute(`meta[itemprop="price"]`, "content")
	if err != nil || strings.TrimSpace(raw) == "" {
		return domain.ExtractionResult{}, serrors.With(ErrPriceNotFound, "mercadolivre: price meta not found")
	}

	price, err := ParsePrice(raw, DotDecimal)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	return domain.ExtractionResult{Name: name, Price: price}, nil
}

// olxExtractor handles OLX listing pages, where the price is a text node
// prefixed with the currency symbol.
type olxExtractor struct{}

func (olxExtractor) Extract(page Page) (domain.ExtractionResult, error) {
	defer func() { _ = page.Close() }()

	name, ok := textOf(page, ".olx-text.olx-text--title-medium.olx-text--block")
	if !ok {
		return domain.ExtractionResult{}, serrors.With(ErrNameNotFound, "olx: listing title not found")
	}

	raw, ok := textOf(page, ".olx-text.olx-text--title-large.olx-text--block")
	if !ok {
		return domain.ExtractionResult{}, serrors.With(ErrPriceNotFound, "olx: price not found")
	}

	price, err := ParsePrice(raw, CommaDecimal)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	return domain.ExtractionResult{Name: name, Price: price}, nil
}

// magazineLuizaExtractor handles Magazine Luiza pages, where the price text
// carries an installment label ("ou R$ ...") that must be stripped.
type magazineLuizaExtractor struct{}

func (magazineLuizaExtractor) Extract(page Page) (domain.ExtractionResult, error) {
	defer func() { _ = page.Close() }()

	name, ok := textOf(page, `h1[data-testid="heading-product-title"]`)
	if !ok {
		return domain.ExtractionResult{}, serrors.With(ErrNameNotFound, "magazineluiza: product title not found")
	}

	raw, ok := textOf(page, `[data-testid="price-value"]`)
	if !ok {
		return domain.ExtractionResult{}, serrors.With(ErrPriceNotFound, "magazineluiza: price not found")
	}

	price, err := ParsePrice(raw, CommaDecimal)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	return domain.ExtractionResult{Name: name, Price: price}, nil
}

// clockExtractor reads a live clock page and reports the time as a price.
// The page changes deterministically, which makes it useful for exercising
// the whole pipeline in tests and demos.
type clockExtractor struct{}

func (clockExtractor) Extract(page Page) (domain.ExtractionResult, error) {
	defer func() { _ = page.Close() }()

	name, ok := textOf(page, "#lbl-title")
	if !ok {
		return domain.ExtractionResult{}, serrors.With(ErrNameNotFound, "clock: title not found")
	}

	raw, ok := textOf(page, "#lbl-time")
	if !ok {
		return domain.ExtractionResult{}, serrors.With(ErrPriceNotFound, "clock: time field not found")
	}

	// "12:34:56" -> minutes and seconds as "34.56"; the hour field is dropped.
	if len(raw) < 4 {
		return domain.ExtractionResult{}, serrors.With(ErrPriceUnparsable, "clock: unexpected time %q", raw)
	}
	price, err := ParsePrice(strings.ReplaceAll(raw[3:], ":", "."), DotDecimal)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	return domain.ExtractionResult{Name: name, Price: price}, nil
}
