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

// AccountService provides account creation and lookup.
type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	rates       portssvc.RatesSvcFacade
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func NewAccountService(accountRepo portsrepo.AccountRepository, rates portssvc.RatesSvcFacade) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		rates:       rates,
	}
}

// CreateAccount creates a new account for the user. InitialBalance arrives in
// the caller's display currency and is normalized to the base currency before
// storage.
func (s *AccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest, displayCurrency string) (*domain.Account, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}

	color := req.Color
	if color == "" {
		color = domain.DefaultAccountColor
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     s.rates.Current().ToBase(req.InitialBalance, displayCurrency),
		Color:       color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// GetAccountByID retrieves an account owned by the user.
func (s *AccountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves the user's accounts in creation order.
func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("user_id", userID))
		return nil, err
	}
	return accounts, nil
}
