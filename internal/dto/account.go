package dto

import (
	"time"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// InitialBalance is expressed in the caller's display currency and converted
// to the base currency before storage.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=BANK CREDIT_CARD CASH"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Color          string          `json:"color"`
}

// AccountResponse defines the data returned for an account. Balance is
// converted to the requested display currency.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Balance     decimal.Decimal    `json:"balance"`
	Currency    string             `json:"currency"`
	Color       string             `json:"color"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account, translating the stored base
// balance into the given display currency.
func ToAccountResponse(acc *domain.Account, rates domain.RateTable, currency string) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Balance:     rates.ToDisplay(acc.Balance, currency),
		Currency:    currency,
		Color:       acc.Color,
		CreatedAt:   acc.CreatedAt,
	}
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
