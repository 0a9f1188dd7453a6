package services

import (
	"context"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/finanza-app/finanza-backend/internal/dto"
)

// LedgerSvcFacade covers the write side of the ledger: recording transactions
// and keeping account balances consistent with them.
type LedgerSvcFacade interface {
	// CreateTransaction validates the draft, normalizes the amount to the
	// base currency (unless alreadyBase, used for bill settlements), assigns
	// id and defaults, and persists the transaction together with the
	// account balance update as one unit.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest, displayCurrency string, alreadyBase bool) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// AccountSvcFacade covers account creation and lookup.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest, displayCurrency string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// BillSvcFacade covers the bill lifecycle: created unpaid, optionally
// deleted, settled at most once.
type BillSvcFacade interface {
	CreateBill(ctx context.Context, userID string, req dto.CreateBillRequest, displayCurrency string) (*domain.Bill, error)
	ListBills(ctx context.Context, userID string) ([]domain.Bill, error)
	// PayBill marks the bill paid and materializes the settlement EXPENSE
	// transaction. accountID selects the settlement account; when empty the
	// default settlement policy (earliest created account) applies.
	PayBill(ctx context.Context, userID, billID, accountID string) (*domain.Bill, *domain.Transaction, error)
	DeleteBill(ctx context.Context, userID, billID string) error
}
