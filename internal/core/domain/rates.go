package domain

import (
	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency all entity amounts are persisted in. The
// display currency is a pure presentation transform applied through a
// RateTable.
const BaseCurrency = "TRY"

// SupportedCurrencies are the display currencies the application understands.
var SupportedCurrencies = []string{"TRY", "USD", "EUR", "GBP", "CAD"}

// RateTable maps a currency code to the number of base-currency units per one
// unit of that currency. The base currency always maps to 1. Tables are
// replaced wholesale on refresh, never patched.
type RateTable map[string]decimal.Decimal

// DefaultRateTable is the seed table used before the first successful
// refresh.
func DefaultRateTable() RateTable {
	return RateTable{
		"TRY": decimal.NewFromInt(1),
		"USD": decimal.NewFromInt(34),
		"EUR": decimal.NewFromInt(37),
		"GBP": decimal.NewFromInt(44),
		"CAD": decimal.NewFromInt(25),
	}
}

// Rate returns the base-units-per-unit rate for the given currency code,
// defaulting to 1 for unknown codes.
func (t RateTable) Rate(code string) decimal.Decimal {
	if rate, ok := t[code]; ok && rate.IsPositive() {
		return rate
	}
	return decimal.NewFromInt(1)
}

// ToDisplay converts a base-currency amount into the given display currency,
// rounded to 2 decimal places. A round trip through ToDisplay and ToBase is
// only accurate to a cent.
func (t RateTable) ToDisplay(base decimal.Decimal, code string) decimal.Decimal {
	return base.Div(t.Rate(code)).Round(2)
}

// ToBase converts a display-currency amount into the base currency, rounded
// to 2 decimal places.
func (t RateTable) ToBase(display decimal.Decimal, code string) decimal.Decimal {
	return display.Mul(t.Rate(code)).Round(2)
}

// Clone returns a copy of the table so callers can read it without holding
// the owner's lock.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for code, rate := range t {
		out[code] = rate
	}
	return out
}
