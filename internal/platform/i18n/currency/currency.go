// Package currency holds the static currency reference table used by console
// pricing surfaces, plus locale-aware formatting and fixed-rate conversion.
//
// The table is read-only after process start. Exchange rates are a compiled-in
// snapshot; this package deliberately has no fetch path.
package currency

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrUnsupported reports a currency code outside the supported table.
var ErrUnsupported = errors.New("unsupported currency code")

// Currency describes one supported currency.
type Currency struct {
	Code        string
	Symbol      string
	Name        string
	MinorDigits int
}

var table = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar", MinorDigits: 2},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro", MinorDigits: 2},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound", MinorDigits: 2},
	"BRL": {Code: "BRL", Symbol: "R$", Name: "Brazilian Real", MinorDigits: 2},
	"JPY": {Code: "JPY", Symbol: "¥", Name: "Japanese Yen", MinorDigits: 0},
	"CAD": {Code: "CAD", Symbol: "CA$", Name: "Canadian Dollar", MinorDigits: 2},
	"AUD": {Code: "AUD", Symbol: "A$", Name: "Australian Dollar", MinorDigits: 2},
	"CHF": {Code: "CHF", Symbol: "CHF", Name: "Swiss Franc", MinorDigits: 2},
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee", MinorDigits: 2},
	"MXN": {Code: "MXN", Symbol: "MX$", Name: "Mexican Peso", MinorDigits: 2},
}

// usdRates maps a currency code to units per one US dollar.
var usdRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"BRL": 5.43,
	"JPY": 147.2,
	"CAD": 1.37,
	"AUD": 1.52,
	"CHF": 0.86,
	"INR": 83.4,
	"MXN": 18.7,
}

// Lookup returns the currency for an ISO 4217 code. Codes are matched exactly
// after upper-casing; anything outside the table returns ErrUnsupported.
func Lookup(code string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if _, err := xcurrency.ParseISO(normalized); err != nil {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnsupported, code)
	}
	c, ok := table[normalized]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnsupported, code)
	}
	return c, nil
}

// Supported returns the supported currencies sorted by code.
func Supported() []Currency {
	out := make([]Currency, 0, len(table))
	for _, c := range table {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Format renders an amount in the given currency for a locale. Identical
// inputs always produce identical output; unsupported codes return an error
// and an empty string, never a partial render.
func Format(tag language.Tag, amount float64, code string) (string, error) {
	c, err := Lookup(code)
	if err != nil {
		return "", err
	}
	printer := message.NewPrinter(tag)
	formatted := printer.Sprintf("%v", number.Decimal(amount,
		number.Scale(c.MinorDigits),
	))
	return c.Symbol + formatted, nil
}

// Rate returns how many units of the target currency one unit of the source
// currency buys under the static rate table.
func Rate(from, to string) (float64, error) {
	fromCurrency, err := Lookup(from)
	if err != nil {
		return 0, err
	}
	toCurrency, err := Lookup(to)
	if err != nil {
		return 0, err
	}
	return usdRates[toCurrency.Code] / usdRates[fromCurrency.Code], nil
}

// Convert converts an amount between two supported currencies via the USD
// cross rate.
func Convert(amount float64, from, to string) (float64, error) {
	rate, err := Rate(from, to)
	if err != nil {
		return 0, err
	}
	return amount * rate, nil
}
