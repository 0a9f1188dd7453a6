package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portsrepo "github.com/finanza-app/finanza-backend/internal/core/ports/repositories"
	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
)

// ReportingService derives read-only dashboard views from the ledger. Every
// call recomputes from the stored entries; nothing is cached.
type ReportingService struct {
	BaseService
	txnRepo  portsrepo.TransactionRepository
	billRepo portsrepo.BillRepository
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

func NewReportingService(txnRepo portsrepo.TransactionRepository, billRepo portsrepo.BillRepository) *ReportingService {
	return &ReportingService{
		txnRepo:  txnRepo,
		billRepo: billRepo,
	}
}

// Summary returns total income, total expense and net balance over the whole
// ledger, in the base currency.
func (s *ReportingService) Summary(ctx context.Context, userID string) (domain.LedgerTotals, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary", slog.String("user_id", userID))
		return domain.LedgerTotals{}, err
	}
	return domain.SummarizeTransactions(transactions), nil
}

// CategoryBreakdown returns per-category expense totals, largest first.
func (s *ReportingService) CategoryBreakdown(ctx context.Context, userID string) ([]domain.CategoryTotal, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for breakdown", slog.String("user_id", userID))
		return nil, err
	}
	return domain.ExpenseBreakdown(transactions), nil
}

// UpcomingBills returns the user's unpaid bills annotated with overdue and
// due-soon flags relative to today.
func (s *ReportingService) UpcomingBills(ctx context.Context, userID string, today time.Time) ([]domain.UpcomingBill, error) {
	bills, err := s.billRepo.ListBills(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load bills for dashboard", slog.String("user_id", userID))
		return nil, err
	}
	return domain.UpcomingBills(bills, today), nil
}
