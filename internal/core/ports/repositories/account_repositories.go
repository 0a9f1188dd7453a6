package repositories

import (
	"context"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
)

// AccountRepository persists accounts. Balances are only ever mutated through
// TransactionRepository.SaveTransaction or BillRepository.SettleBill, which
// apply the delta atomically with the ledger write.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	SaveAccounts(ctx context.Context, accounts []domain.Account) error
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	// ListAccounts returns the user's accounts ordered by creation time, so
	// the first element is the default settlement account.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}
