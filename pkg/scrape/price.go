package scrape

import (
	"regexp"
	"strings"

	"pricetracker/pkg/serrors"

	"github.com/shopspring/decimal"
)

// Convention selects how thousands and decimal separators are interpreted
// when parsing a price string. Each extractor knows the convention of its
// site and passes it along.
type Convention int

const (
	// DotDecimal treats "." as the decimal separator and "," as a thousands
	// separator: "1,234.56" means 1234.56.
	DotDecimal Convention = iota
	// CommaDecimal treats "," as the decimal separator and "." as a thousands
	// separator: "2.300,99" means 2300.99.
	CommaDecimal
)

// priceRe splits a raw price into a non-numeric prefix (currency symbols,
// labels such as "ou" or "starting at", whitespace) and the numeric part.
// Anything after the numeric part makes the whole string unparsable.
var priceRe = regexp.MustCompile(`^([^0-9]*?)([0-9][0-9.,\x{00a0} ]*)$`)

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// ParsePrice converts a raw price string into a decimal value. Currency
// symbols, label prefixes and whitespace before the first digit are
// stripped; separators are resolved per the given convention. An unparsable
// string is always an ErrPriceUnparsable, never a default value.
func ParsePrice(raw string, conv Convention) (decimal.Decimal, error) {
	m := priceRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return decimal.Zero, serrors.With(ErrPriceUnparsable, "no numeric value in %q", raw)
	}

	num := strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' {
			return -1
		}

		return r
	}, m[2])

	switch conv {
	case CommaDecimal:
		num = strings.ReplaceAll(num, ".", "")
		num = strings.Replace(num, ",", ".", 1)
	case DotDecimal:
		num = strings.ReplaceAll(num, ",", "")
	}

	price, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, serrors.Wrap(ErrPriceUnparsable, err, "could not parse %q", raw)
	}

	return price, nil
}

// ParsePriceParts converts a price split across whole and fraction fields
// (Amazon-style markup) into a decimal value. Separators inside the whole
// part are treated as thousands separators regardless of convention; the
// fraction part must be bare digits.
func ParsePriceParts(whole, fraction string) (decimal.Decimal, error) {
	w := strings.Map(func(r rune) rune {
		if r == '.' || r == ',' || r == ' ' || r == ' ' {
			return -1
		}

		return r
	}, strings.TrimSpace(whole))
	f := strings.TrimSpace(fraction)

	if !digitsRe.MatchString(w) || !digitsRe.MatchString(f) {
		return decimal.Zero, serrors.With(ErrPriceUnparsable, "bad split price %q + %q", whole, fraction)
	}

	price, err := decimal.NewFromString(w + "." + f)
	if err != nil {
		return decimal.Zero, serrors.Wrap(ErrPriceUnparsable, err, "bad split price %q + %q", whole, fraction)
	}

	return price, nil
}
