package services

import (
	"context"
	"time"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
)

// ReportingSvcFacade derives read-only dashboard views from the ledger. All
// results are in the base currency; display conversion happens at the DTO
// boundary.
type ReportingSvcFacade interface {
	Summary(ctx context.Context, userID string) (domain.LedgerTotals, error)
	CategoryBreakdown(ctx context.Context, userID string) ([]domain.CategoryTotal, error)
	UpcomingBills(ctx context.Context, userID string, today time.Time) ([]domain.UpcomingBill, error)
}
