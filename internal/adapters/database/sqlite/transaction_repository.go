package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portsrepo "github.com/finanza-app/finanza-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// TransactionRepository is the sqlite implementation of
// portsrepo.TransactionRepository.
type TransactionRepository struct {
	db *sql.DB
}

var _ portsrepo.TransactionRepository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `transaction_id, user_id, account_id, amount, category, description, transaction_type, transaction_date, created_at`

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var txn domain.Transaction
	var amount string
	err := row.Scan(&txn.TransactionID, &txn.UserID, &txn.AccountID, &amount, &txn.Category,
		&txn.Description, &txn.TransactionType, &txn.TransactionDate, &txn.CreatedAt)
	if err != nil {
		return nil, err
	}
	txn.Amount, err = parseDecimal(amount)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func insertTransaction(ctx context.Context, tx *sql.Tx, txn domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, query,
		txn.TransactionID, txn.UserID, txn.AccountID, txn.Amount.String(), txn.Category,
		txn.Description, txn.TransactionType, txn.TransactionDate, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChange decimal.Decimal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := applyBalanceChange(ctx, tx, txn.UserID, txn.AccountID, balanceChange, txn.CreatedAt); err != nil {
		return err
	}
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = ? ORDER BY created_at DESC, transaction_id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
