package repositories

import (
	"context"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillRepository persists bills and their settlement.
type BillRepository interface {
	SaveBill(ctx context.Context, bill domain.Bill) error
	FindBillByID(ctx context.Context, userID, billID string) (*domain.Bill, error)
	// ListBills returns the user's bills ordered by due date.
	ListBills(ctx context.Context, userID string) ([]domain.Bill, error)
	DeleteBill(ctx context.Context, userID, billID string) error
	// SettleBill marks the bill paid, inserts the settlement transaction and
	// applies balanceChange to the settlement account, all within one store
	// transaction. A bill that is already paid yields apperrors.ErrConflict
	// and no write, which makes repeated settlement attempts safe.
	SettleBill(ctx context.Context, bill domain.Bill, settlement domain.Transaction, balanceChange decimal.Decimal) error
}
