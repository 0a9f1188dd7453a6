package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-app/finanza-backend/internal/apperrors"
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portsrepo "github.com/finanza-app/finanza-backend/internal/core/ports/repositories"
	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
	"github.com/finanza-app/finanza-backend/internal/utils"
)

// UserService handles registration and credential checks.
type UserService struct {
	BaseService
	userRepo    portsrepo.UserRepository
	accountRepo portsrepo.AccountRepository
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func NewUserService(userRepo portsrepo.UserRepository, accountRepo portsrepo.AccountRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
	}
}

// Register creates the user with a bcrypt-hashed password and seeds the
// starter accounts, all at a zero balance. A taken username yields
// apperrors.ErrDuplicate.
func (s *UserService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		IsVerified:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		}
		return nil, err
	}

	if err := s.seedAccounts(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to seed starter accounts", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	return &user, nil
}

// Authenticate verifies username and password. Both an unknown username and a
// wrong password map to apperrors.ErrUnauthorized so callers cannot probe for
// existing usernames.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user", slog.String("username", username))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// seedAccounts creates the starter accounts. Creation times are staggered so
// the first seed account is always the earliest created one and therefore
// the default settlement account.
func (s *UserService) seedAccounts(ctx context.Context, userID string, base time.Time) error {
	accounts := make([]domain.Account, 0, len(domain.SeedAccounts))
	for i, seed := range domain.SeedAccounts {
		created := base.Add(time.Duration(i) * time.Millisecond)
		accounts = append(accounts, domain.Account{
			AccountID:   uuid.NewString(),
			UserID:      userID,
			Name:        seed.Name,
			AccountType: seed.Type,
			Balance:     decimal.Zero,
			Color:       seed.Color,
			AuditFields: domain.AuditFields{
				CreatedAt:     created,
				LastUpdatedAt: created,
			},
		})
	}
	return s.accountRepo.SaveAccounts(ctx, accounts)
}
