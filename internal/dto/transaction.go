package dto

import (
	"time"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is a transaction draft. Amount is expressed in the
// caller's display currency unless the ledger marks it as already base
// (bill settlements). Category and Date are optional and defaulted by the
// ledger service.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Category    string                 `json:"category"`
	Description string                 `json:"description" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Date        *time.Time             `json:"date"`
	AccountID   string                 `json:"accountID" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction, amount
// converted to the requested display currency.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	Amount        decimal.Decimal        `json:"amount"`
	Currency      string                 `json:"currency"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description"`
	Type          domain.TransactionType `json:"type"`
	Date          time.Time              `json:"date"`
}

// ToTransactionResponse converts a domain.Transaction for display.
func ToTransactionResponse(txn *domain.Transaction, rates domain.RateTable, currency string) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Amount:        rates.ToDisplay(txn.Amount, currency),
		Currency:      currency,
		Category:      txn.Category,
		Description:   txn.Description,
		Type:          txn.TransactionType,
		Date:          txn.TransactionDate,
	}
}

// ToTransactionResponses converts a slice of transactions for display.
func ToTransactionResponses(txns []domain.Transaction, rates domain.RateTable, currency string) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i], rates, currency)
	}
	return out
}

// ListTransactionsResponse wraps the transaction list.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
