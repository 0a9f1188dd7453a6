package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a user-facing account.
type AccountType string

const (
	Bank       AccountType = "BANK"
	CreditCard AccountType = "CREDIT_CARD"
	Cash       AccountType = "CASH"
)

// DefaultAccountColor is applied when the user does not pick one.
const DefaultAccountColor = "indigo"

// Account is a financial account owned by a single user.
// Balance is always held in the base currency; display conversion happens at
// the API boundary. Accounts are never deleted; the balance is mutated only
// by ledger operations.
type Account struct {
	AccountID   string          `json:"accountID"`
	UserID      string          `json:"userID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	Color       string          `json:"color"`
	AuditFields
}

// SeedAccount describes one of the starter accounts created for every new
// user at registration, all with a zero balance.
type SeedAccount struct {
	Name  string
	Type  AccountType
	Color string
}

var SeedAccounts = []SeedAccount{
	{Name: "Bank Account", Type: Bank, Color: "indigo"},
	{Name: "Credit Card", Type: CreditCard, Color: "slate"},
	{Name: "Cash", Type: Cash, Color: "emerald"},
}
