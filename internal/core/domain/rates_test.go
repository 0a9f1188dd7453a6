package domain_test

import (
	"testing"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable_Rate(t *testing.T) {
	table := domain.DefaultRateTable()

	assert.True(t, table.Rate("USD").Equal(decimal.NewFromInt(34)))
	assert.True(t, table.Rate("TRY").Equal(decimal.NewFromInt(1)))
	// Unknown codes fall back to 1 so conversion becomes the identity.
	assert.True(t, table.Rate("JPY").Equal(decimal.NewFromInt(1)))
}

func TestRateTable_ToDisplay(t *testing.T) {
	table := domain.DefaultRateTable()

	display := table.ToDisplay(decimal.NewFromInt(3400), "USD")
	assert.True(t, display.Equal(decimal.NewFromInt(100)), "got %s", display)

	// Rounded to 2 decimal places.
	display = table.ToDisplay(decimal.NewFromInt(100), "EUR")
	assert.Equal(t, "2.7", display.String())
}

func TestRateTable_ToBase(t *testing.T) {
	table := domain.DefaultRateTable()

	base := table.ToBase(decimal.NewFromInt(100), "USD")
	assert.Equal(t, "3400", base.String())

	// Base currency is a no-op conversion.
	base = table.ToBase(decimal.NewFromFloat(12.34), "TRY")
	assert.Equal(t, "12.34", base.String())
}

func TestRateTable_RoundTripWithinACent(t *testing.T) {
	rates := []decimal.Decimal{
		decimal.NewFromFloat(0.5),
		decimal.NewFromInt(1),
		decimal.NewFromFloat(25.1),
		decimal.NewFromFloat(34.27),
		decimal.NewFromFloat(44.5),
	}
	amounts := []decimal.Decimal{
		decimal.NewFromFloat(0.01),
		decimal.NewFromFloat(9.99),
		decimal.NewFromInt(100),
		decimal.NewFromFloat(12345.67),
	}

	tolerance := decimal.NewFromFloat(0.01)
	for _, rate := range rates {
		table := domain.RateTable{"XXX": rate}
		for _, amount := range amounts {
			roundTrip := table.ToBase(table.ToDisplay(amount, "XXX"), "XXX")
			diff := roundTrip.Sub(amount).Abs()
			// Display rounding is lossy, but never by more than a cent
			// scaled by the rate.
			maxDiff := tolerance.Mul(rate).Add(tolerance)
			assert.True(t, diff.LessThanOrEqual(maxDiff),
				"amount %s rate %s drifted by %s", amount, rate, diff)
		}
	}
}

func TestRateTable_Clone(t *testing.T) {
	table := domain.DefaultRateTable()
	clone := table.Clone()

	require.Len(t, clone, len(table))
	clone["USD"] = decimal.NewFromInt(99)
	assert.True(t, table.Rate("USD").Equal(decimal.NewFromInt(34)), "clone must not alias the original")
}
