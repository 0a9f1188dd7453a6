package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finanza-app/finanza-backend/internal/apperrors"
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portsrepo "github.com/finanza-app/finanza-backend/internal/core/ports/repositories"
	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
)

// LedgerService records transactions and keeps account balances consistent
// with them.
type LedgerService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
	rates   portssvc.RatesSvcFacade
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

func NewLedgerService(txnRepo portsrepo.TransactionRepository, rates portssvc.RatesSvcFacade) *LedgerService {
	return &LedgerService{
		txnRepo: txnRepo,
		rates:   rates,
	}
}

// CreateTransaction validates the draft, normalizes the amount to the base
// currency and persists the transaction together with the account balance
// update as one unit. alreadyBase skips currency conversion; it is set for
// internally generated entries such as bill settlements.
func (s *LedgerService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest, displayCurrency string, alreadyBase bool) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Type != domain.Income && req.Type != domain.Expense {
		return nil, fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, req.Type)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultCategory(req.Type)
	} else if !domain.ValidCategory(req.Type, category) {
		return nil, fmt.Errorf("%w: invalid category %q for type %s", apperrors.ErrValidation, category, req.Type)
	}

	amount := req.Amount
	if !alreadyBase {
		amount = s.rates.Current().ToBase(amount, displayCurrency)
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		AccountID:       req.AccountID,
		Amount:          amount,
		Category:        category,
		Description:     req.Description,
		TransactionType: req.Type,
		TransactionDate: date,
		CreatedAt:       now,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, txn.SignedAmount()); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("user_id", userID),
			slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.TransactionType)),
		slog.String("category", txn.Category))
	return &txn, nil
}

// ListTransactions retrieves the user's transactions, most recent first.
func (s *LedgerService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, err
	}
	return transactions, nil
}
