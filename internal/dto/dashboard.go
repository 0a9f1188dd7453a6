package dto

import (
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse carries the dashboard totals in the requested display
// currency.
type SummaryResponse struct {
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// ToSummaryResponse converts ledger totals for display.
func ToSummaryResponse(totals domain.LedgerTotals, rates domain.RateTable, currency string) SummaryResponse {
	return SummaryResponse{
		Income:   rates.ToDisplay(totals.Income, currency),
		Expense:  rates.ToDisplay(totals.Expense, currency),
		Balance:  rates.ToDisplay(totals.Balance, currency),
		Currency: currency,
	}
}

// CategoryTotalResponse is one slice of the expense breakdown.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryBreakdownResponse wraps the expense-by-category breakdown.
type CategoryBreakdownResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
	Currency   string                  `json:"currency"`
}

// ToCategoryBreakdownResponse converts the breakdown for display.
func ToCategoryBreakdownResponse(breakdown []domain.CategoryTotal, rates domain.RateTable, currency string) CategoryBreakdownResponse {
	categories := make([]CategoryTotalResponse, len(breakdown))
	for i, entry := range breakdown {
		categories[i] = CategoryTotalResponse{
			Category: entry.Category,
			Total:    rates.ToDisplay(entry.Total, currency),
		}
	}
	return CategoryBreakdownResponse{Categories: categories, Currency: currency}
}

// UpcomingBillsResponse wraps the annotated unpaid bills.
type UpcomingBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}
