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

// BillService manages the bill lifecycle: created unpaid, optionally deleted,
// settled at most once.
type BillService struct {
	BaseService
	billRepo    portsrepo.BillRepository
	accountRepo portsrepo.AccountRepository
	rates       portssvc.RatesSvcFacade
}

var _ portssvc.BillSvcFacade = (*BillService)(nil)

func NewBillService(billRepo portsrepo.BillRepository, accountRepo portsrepo.AccountRepository, rates portssvc.RatesSvcFacade) *BillService {
	return &BillService{
		billRepo:    billRepo,
		accountRepo: accountRepo,
		rates:       rates,
	}
}

// CreateBill tracks a new unpaid bill. Amount arrives in the caller's display
// currency and is normalized to the base currency.
func (s *BillService) CreateBill(ctx context.Context, userID string, req dto.CreateBillRequest, displayCurrency string) (*domain.Bill, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: bill name is required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultBillCategory
	} else if !domain.ValidCategory(domain.Expense, category) {
		return nil, fmt.Errorf("%w: invalid category %q", apperrors.ErrValidation, category)
	}

	now := time.Now()
	bill := domain.Bill{
		BillID:   uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Amount:   s.rates.Current().ToBase(req.Amount, displayCurrency),
		DueDate:  req.DueDate,
		Category: category,
		IsPaid:   false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to save bill", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Bill created", slog.String("bill_id", bill.BillID), slog.String("name", bill.Name))
	return &bill, nil
}

// ListBills retrieves the user's bills ordered by due date.
func (s *BillService) ListBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	bills, err := s.billRepo.ListBills(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills", slog.String("user_id", userID))
		return nil, err
	}
	return bills, nil
}

// PayBill settles the bill: it is marked paid and an EXPENSE transaction for
// the bill amount is recorded against the settlement account, both in one
// atomic store write. accountID selects the settlement account; when empty
// the user's earliest created account is used. A bill that is already paid
// yields apperrors.ErrConflict and nothing is written.
func (s *BillService) PayBill(ctx context.Context, userID, billID, accountID string) (*domain.Bill, *domain.Transaction, error) {
	bill, err := s.billRepo.FindBillByID(ctx, userID, billID)
	if err != nil {
		return nil, nil, err
	}
	if bill.IsPaid {
		return nil, nil, fmt.Errorf("%w: bill is already paid", apperrors.ErrConflict)
	}

	account, err := s.resolveSettlementAccount(ctx, userID, accountID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	settlement := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		AccountID:       account.AccountID,
		Amount:          bill.Amount,
		Category:        bill.Category,
		Description:     bill.SettlementDescription(),
		TransactionType: domain.Expense,
		TransactionDate: now,
		CreatedAt:       now,
	}

	if err := s.billRepo.SettleBill(ctx, *bill, settlement, settlement.SignedAmount()); err != nil {
		s.LogError(ctx, err, "Failed to settle bill",
			slog.String("bill_id", billID),
			slog.String("account_id", account.AccountID))
		return nil, nil, err
	}

	bill.IsPaid = true
	bill.LastUpdatedAt = now

	s.LogInfo(ctx, "Bill settled",
		slog.String("bill_id", bill.BillID),
		slog.String("account_id", account.AccountID),
		slog.String("transaction_id", settlement.TransactionID))
	return bill, &settlement, nil
}

// DeleteBill removes an unpaid or paid bill. Settlement transactions already
// recorded are kept; deleting a bill never rewrites the ledger.
func (s *BillService) DeleteBill(ctx context.Context, userID, billID string) error {
	if err := s.billRepo.DeleteBill(ctx, userID, billID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Bill deleted", slog.String("bill_id", billID))
	return nil
}

func (s *BillService) resolveSettlementAccount(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	if accountID != "" {
		return s.accountRepo.FindAccountByID(ctx, userID, accountID)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: no account available to settle the bill", apperrors.ErrValidation)
	}
	return &accounts[0], nil
}
