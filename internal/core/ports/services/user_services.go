package services

import (
	"context"
	"time"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/finanza-app/finanza-backend/internal/dto"
)

// UserSvcFacade covers registration and credential checks.
type UserSvcFacade interface {
	// Register creates the user (bcrypt-hashed password, auto-verified) and
	// seeds the starter accounts.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	// Authenticate verifies username/password and returns the user, or
	// apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// TokenSvcFacade issues session tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// PreferenceSvcFacade covers per-user presentation settings.
type PreferenceSvcFacade interface {
	GetPreferences(ctx context.Context, userID string) (dto.PreferencesResponse, error)
	UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (dto.PreferencesResponse, error)
}
