package core

import (
	"math"
	"strconv"
	"strings"
)

const (
	USD Currency = iota
	GBP
	EUR
	CAN
)

// Currency is one of a closed set of currency codes.
type Currency int

type currencyInfo struct {
	code   string
	factor float64
}

// currencies holds the conversion factor of each currency relative to a
// common reference unit. The table is fixed at compile time.
var currencies = [...]currencyInfo{
	USD: {code: "USD", factor: 2},
	GBP: {code: "GBP", factor: 1},
	EUR: {code: "EUR", factor: 3},
	CAN: {code: "CAN", factor: 2.5},
}

// Currencies returns every supported currency in declaration order.
func Currencies() []Currency {
	return []Currency{USD, GBP, EUR, CAN}
}

// Valid reports whether c is one of the declared currencies.
func (c Currency) Valid() bool {
	return c >= 0 && int(c) < len(currencies)
}

// Factor returns the conversion factor of c, or NaN when c is not a
// declared currency.
func (c Currency) Factor() float64 {
	if !c.Valid() {
		return math.NaN()
	}
	return currencies[c].factor
}

// String returns the three-letter code of c. Undeclared values render as
// "Currency(N)".
func (c Currency) String() string {
	if !c.Valid() {
		return "Currency(" + strconv.Itoa(int(c)) + ")"
	}
	return currencies[c].code
}

// ParseCurrency converts a currency code (case-insensitive) to a Currency.
func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Currencies() {
		if currencies[c].code == code {
			return c, nil
		}
	}
	return 0, ErrUnknownCurrency
}
