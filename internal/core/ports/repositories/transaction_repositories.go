package repositories

import (
	"context"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository persists ledger entries.
type TransactionRepository interface {
	// SaveTransaction inserts the transaction and applies balanceChange to
	// its account within a single store transaction. Neither effect happens
	// without the other; a missing account yields apperrors.ErrNotFound and
	// no write.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChange decimal.Decimal) error
	// ListTransactions returns the user's transactions ordered by creation
	// time.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}
