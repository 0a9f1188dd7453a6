package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finanza-app/finanza-backend/internal/apperrors"
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portsrepo "github.com/finanza-app/finanza-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// BillRepository is the sqlite implementation of portsrepo.BillRepository.
type BillRepository struct {
	db *sql.DB
}

var _ portsrepo.BillRepository = (*BillRepository)(nil)

func NewBillRepository(db *sql.DB) *BillRepository {
	return &BillRepository{db: db}
}

const billColumns = `bill_id, user_id, name, amount, due_date, category, is_paid, created_at, last_updated_at`

func scanBill(row rowScanner) (*domain.Bill, error) {
	var bill domain.Bill
	var amount string
	err := row.Scan(&bill.BillID, &bill.UserID, &bill.Name, &amount, &bill.DueDate,
		&bill.Category, &bill.IsPaid, &bill.CreatedAt, &bill.LastUpdatedAt)
	if err != nil {
		return nil, err
	}
	bill.Amount, err = parseDecimal(amount)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *BillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	query := `INSERT INTO bills (` + billColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		bill.BillID, bill.UserID, bill.Name, bill.Amount.String(), bill.DueDate,
		bill.Category, bill.IsPaid, bill.CreatedAt, bill.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}
	return nil
}

func (r *BillRepository) FindBillByID(ctx context.Context, userID, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE user_id = ? AND bill_id = ?`
	bill, err := scanBill(r.db.QueryRowContext(ctx, query, userID, billID))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return bill, nil
}

func (r *BillRepository) ListBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE user_id = ? ORDER BY due_date, bill_id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	bills := make([]domain.Bill, 0)
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}
	return bills, nil
}

func (r *BillRepository) DeleteBill(ctx context.Context, userID, billID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE user_id = ? AND bill_id = ?`, userID, billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BillRepository) SettleBill(ctx context.Context, bill domain.Bill, settlement domain.Transaction, balanceChange decimal.Decimal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The is_paid guard makes the flip atomic: a concurrent settlement of
	// the same bill loses the race and gets ErrConflict.
	res, err := tx.ExecContext(ctx,
		`UPDATE bills SET is_paid = 1, last_updated_at = ? WHERE user_id = ? AND bill_id = ? AND is_paid = 0`,
		settlement.CreatedAt, bill.UserID, bill.BillID)
	if err != nil {
		return fmt.Errorf("failed to mark bill paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		var exists bool
		err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM bills WHERE user_id = ? AND bill_id = ?)`,
			bill.UserID, bill.BillID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check bill existence: %w", err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}

	if err := applyBalanceChange(ctx, tx, settlement.UserID, settlement.AccountID, balanceChange, settlement.CreatedAt); err != nil {
		return err
	}
	if err := insertTransaction(ctx, tx, settlement); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
