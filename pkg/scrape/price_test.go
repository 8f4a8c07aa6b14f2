package scrape

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name string
		in   string
		conv Convention
		out  string
		ok   bool
	}{
		{
			name: "comma decimal with thousands dot",
			in:   "2.300,99",
			conv: CommaDecimal,
			out:  "2300.99",
			ok:   true,
		},
		{
			name: "currency prefix stripped",
			in:   "R$ 1.500",
			conv: CommaDecimal,
			out:  "1500",
			ok:   true,
		},
		{
			name: "installment label and currency stripped",
			in:   "ou R$ 3.499,99",
			conv: CommaDecimal,
			out:  "3499.99",
			ok:   true,
		},
		{
			name: "dot decimal with thousands comma",
			in:   "1,234.56",
			conv: DotDecimal,
			out:  "1234.56",
			ok:   true,
		},
		{
			name: "plain dot decimal",
			in:   "189.90",
			conv: DotDecimal,
			out:  "189.9",
			ok:   true,
		},
		{
			name: "non-breaking space after symbol",
			in:   "R$ 2.300,99",
			conv: CommaDecimal,
			out:  "2300.99",
			ok:   true,
		},
		{
			name: "trailing residue fails",
			in:   "199,90 reais",
			conv: CommaDecimal,
			ok:   false,
		},
		{
			name: "no digits fails",
			in:   "indisponível",
			conv: CommaDecimal,
			ok:   false,
		},
		{
			name: "empty string fails",
			in:   "",
			conv: DotDecimal,
			ok:   false,
		},
		{
			name: "two decimal commas fail",
			in:   "1,2,3",
			conv: CommaDecimal,
			ok:   false,
		},
	}

	for _, tc := range cases {
		got, err := ParsePrice(tc.in, tc.conv)
		if tc.ok {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tc.name, err)

				continue
			}
			if !got.Equal(decimal.RequireFromString(tc.out)) {
				t.Errorf("%s: got %s, want %s", tc.name, got, tc.out)
			}
		} else {
			if err == nil {
				t.Errorf("%s: expected error, got %s", tc.name, got)

				continue
			}
			if !errors.Is(err, ErrPriceUnparsable) {
				t.Errorf("%s: expected ErrPriceUnparsable, got %v", tc.name, err)
			}
		}
	}
}

func TestParsePriceParts(t *testing.T) {
	cases := []struct {
		name     string
		whole    string
		fraction string
		out      string
		ok       bool
	}{
		{name: "thousands dot in whole", whole: "1.234", fraction: "56", out: "1234.56", ok: true},
		{name: "trailing comma on whole", whole: "1.234,", fraction: "56", out: "1234.56", ok: true},
		{name: "small price", whole: "9", fraction: "90", out: "9.9", ok: true},
		{name: "letters in whole fail", whole: "1a2", fraction: "56", ok: false},
		{name: "empty fraction fails", whole: "1234", fraction: "", ok: false},
		{name: "empty whole fails", whole: "", fraction: "56", ok: false},
	}

	for _, tc := range cases {
		got, err := ParsePriceParts(tc.whole, tc.fraction)
		if tc.ok {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tc.name, err)

				continue
			}
			if !got.Equal(decimal.RequireFromString(tc.out)) {
				t.Errorf("%s: got %s, want %s", tc.name, got, tc.out)
			}
		} else if err == nil || !errors.Is(err, ErrPriceUnparsable) {
			t.Errorf("%s: expected ErrPriceUnparsable, got %v", tc.name, err)
		}
	}
}
