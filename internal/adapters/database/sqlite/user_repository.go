package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finanza-app/finanza-backend/internal/apperrors"
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portsrepo "github.com/finanza-app/finanza-backend/internal/core/ports/repositories"
)

// UserRepository is the sqlite implementation of portsrepo.UserRepository.
type UserRepository struct {
	db *sql.DB
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id, username, email, password_hash, is_verified, created_at, last_updated_at`

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash,
		&user.IsVerified, &user.CreatedAt, &user.LastUpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		user.UserID, user.Username, user.Email, user.PasswordHash,
		user.IsVerified, user.CreatedAt, user.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ?`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return user, nil
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return user, nil
}
