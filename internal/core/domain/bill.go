package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBillCategory is the ledger category assigned to bill settlements.
const DefaultBillCategory = "bills"

// Bill is a recurring or one-off obligation tracked ahead of payment. Amount
// is positive and held in the base currency. Paying a bill flips IsPaid and
// records a settlement expense against an account; a paid bill can never be
// paid again.
type Bill struct {
	BillID   string          `json:"billID"`
	UserID   string          `json:"userID"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  time.Time       `json:"dueDate"`
	Category string          `json:"category"`
	IsPaid   bool            `json:"isPaid"`
	AuditFields
}

// SettlementDescription is the description used on the ledger entry created
// when the bill is paid.
func (b Bill) SettlementDescription() string {
	return b.Name + " Payment"
}
