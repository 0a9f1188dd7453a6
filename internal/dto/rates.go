package dto

import (
	"time"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateTableResponse is the current rate table: base-currency units per one
// unit of each listed currency.
type RateTableResponse struct {
	Base        string                     `json:"base"`
	Rates       map[string]decimal.Decimal `json:"rates"`
	RefreshedAt *time.Time                 `json:"refreshedAt,omitempty"`
}

// ToRateTableResponse converts a rate table snapshot for display.
func ToRateTableResponse(table domain.RateTable, refreshedAt *time.Time) RateTableResponse {
	return RateTableResponse{
		Base:        domain.BaseCurrency,
		Rates:       table,
		RefreshedAt: refreshedAt,
	}
}
