package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portsrepo "github.com/finanza-app/finanza-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// AccountRepository is the sqlite implementation of
// portsrepo.AccountRepository.
type AccountRepository struct {
	db *sql.DB
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `account_id, user_id, name, account_type, balance, color, created_at, last_updated_at`

func scanAccount(row rowScanner) (*domain.Account, error) {
	var acc domain.Account
	var balance string
	err := row.Scan(&acc.AccountID, &acc.UserID, &acc.Name, &acc.AccountType, &balance, &acc.Color, &acc.CreatedAt, &acc.LastUpdatedAt)
	if err != nil {
		return nil, err
	}
	acc.Balance, err = parseDecimal(balance)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		account.AccountID, account.UserID, account.Name, account.AccountType,
		account.Balance.String(), account.Color, account.CreatedAt, account.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

func (r *AccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO accounts (` + accountColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for _, account := range accounts {
		_, err := tx.ExecContext(ctx, query,
			account.AccountID, account.UserID, account.Name, account.AccountType,
			account.Balance.String(), account.Color, account.CreatedAt, account.LastUpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert account %s: %w", account.AccountID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = ? AND account_id = ?`
	acc, err := scanAccount(r.db.QueryRowContext(ctx, query, userID, accountID))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return acc, nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = ? ORDER BY created_at, account_id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

// applyBalanceChange adjusts an account balance inside an open transaction.
// It reads the current balance, applies the delta and writes the result back.
func applyBalanceChange(ctx context.Context, tx *sql.Tx, userID, accountID string, change decimal.Decimal, now time.Time) error {
	var balance string
	err := tx.QueryRowContext(ctx, `SELECT balance FROM accounts WHERE user_id = ? AND account_id = ?`, userID, accountID).Scan(&balance)
	if err != nil {
		return mapNoRows(err)
	}

	current, err := parseDecimal(balance)
	if err != nil {
		return err
	}
	updated := current.Add(change).Round(2)

	_, err = tx.ExecContext(ctx, `UPDATE accounts SET balance = ?, last_updated_at = ? WHERE user_id = ? AND account_id = ?`,
		updated.String(), now, userID, accountID)
	if err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}
	return nil
}
