package dto

import (
	"time"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the data needed to track a new bill. Amount is in
// the caller's display currency.
type CreateBillRequest struct {
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	DueDate  time.Time       `json:"dueDate" binding:"required"`
	Category string          `json:"category"`
}

// PayBillRequest optionally names the account the settlement is drawn from.
// When empty the default settlement account (the user's earliest created
// account) is used.
type PayBillRequest struct {
	AccountID string `json:"accountID"`
}

// BillResponse defines the data returned for a bill, amount converted to the
// requested display currency.
type BillResponse struct {
	BillID    string          `json:"billID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	DueDate   time.Time       `json:"dueDate"`
	Category  string          `json:"category"`
	IsPaid    bool            `json:"isPaid"`
	IsOverdue *bool           `json:"isOverdue,omitempty"`
	IsSoon    *bool           `json:"isSoon,omitempty"`
}

// ToBillResponse converts a domain.Bill for display.
func ToBillResponse(bill *domain.Bill, rates domain.RateTable, currency string) BillResponse {
	return BillResponse{
		BillID:   bill.BillID,
		Name:     bill.Name,
		Amount:   rates.ToDisplay(bill.Amount, currency),
		Currency: currency,
		DueDate:  bill.DueDate,
		Category: bill.Category,
		IsPaid:   bill.IsPaid,
	}
}

// ToUpcomingBillResponse converts an annotated bill for the dashboard.
func ToUpcomingBillResponse(bill domain.UpcomingBill, rates domain.RateTable, currency string) BillResponse {
	resp := ToBillResponse(&bill.Bill, rates, currency)
	resp.IsOverdue = &bill.IsOverdue
	resp.IsSoon = &bill.IsSoon
	return resp
}

// ListBillsResponse wraps the bill list.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}

// PayBillResponse returns the settled bill together with the settlement
// transaction that was created.
type PayBillResponse struct {
	Bill       BillResponse        `json:"bill"`
	Settlement TransactionResponse `json:"settlement"`
}
