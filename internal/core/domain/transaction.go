package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts from an
// account balance.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// IncomeCategories and ExpenseCategories are the fixed category sets. The
// first entry of each list is the default when a draft omits the category.
var (
	IncomeCategories  = []string{"salary", "freelance", "bonus", "investment", "gift", "other"}
	ExpenseCategories = []string{"food", "transport", "entertainment", "bills", "rent", "health", "education", "other"}
)

// DefaultCategory returns the default category for the given transaction type.
func DefaultCategory(txType TransactionType) string {
	if txType == Income {
		return IncomeCategories[0]
	}
	return ExpenseCategories[0]
}

// ValidCategory reports whether category belongs to the set for the given type.
func ValidCategory(txType TransactionType, category string) bool {
	categories := ExpenseCategories
	if txType == Income {
		categories = IncomeCategories
	}
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

// Transaction is a single immutable ledger entry. Amount is positive and
// stored in the base currency regardless of the currency the user was viewing
// when it was entered; TransactionType determines the sign applied to the
// account balance.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	UserID          string          `json:"userID"`
	AccountID       string          `json:"accountID"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionType TransactionType `json:"transactionType"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// SignedAmount is the balance delta this transaction applies to its account.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}
