package repositories

import (
	"context"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
)

// UserRepository persists registered users.
type UserRepository interface {
	// SaveUser inserts the user; a duplicate username yields
	// apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// PreferenceRepository persists per-user presentation settings as key-value
// rows.
type PreferenceRepository interface {
	GetPreferences(ctx context.Context, userID string) (map[string]string, error)
	SetPreference(ctx context.Context, userID, key, value string) error
}
