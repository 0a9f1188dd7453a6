package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/finanza-app/finanza-backend/internal/apperrors"
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
)

// RatesService owns the process-wide exchange-rate table. It starts from the
// seed table and replaces it wholesale on each successful refresh; a refresh
// that fails or produces an implausible table leaves the previous one in
// place.
type RatesService struct {
	BaseService
	source portssvc.RateSource

	mu          sync.RWMutex
	table       domain.RateTable
	refreshedAt *time.Time

	group singleflight.Group
}

var _ portssvc.RatesSvcFacade = (*RatesService)(nil)

func NewRatesService(source portssvc.RateSource) *RatesService {
	return &RatesService{
		source: source,
		table:  domain.DefaultRateTable(),
	}
}

// Current returns a snapshot of the rate table, safe for concurrent use.
func (s *RatesService) Current() domain.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone()
}

// LastRefreshedAt returns when the table was last replaced, nil before the
// first successful refresh.
func (s *RatesService) LastRefreshedAt() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.refreshedAt == nil {
		return nil
	}
	t := *s.refreshedAt
	return &t
}

// Refresh fetches a new table from the source and installs it if it passes
// the sanity check. Concurrent callers share a single in-flight fetch.
func (s *RatesService) Refresh(ctx context.Context) (domain.RateTable, error) {
	result, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		fetched, err := s.source.FetchExchangeRates(ctx)
		if err != nil {
			s.LogError(ctx, err, "Rate refresh failed, keeping previous table")
			return nil, err
		}
		if err := validateRateTable(fetched); err != nil {
			s.LogError(ctx, err, "Fetched rate table rejected, keeping previous table")
			return nil, err
		}

		now := time.Now()
		s.mu.Lock()
		s.table = fetched.Clone()
		s.refreshedAt = &now
		s.mu.Unlock()

		s.LogInfo(ctx, "Rate table refreshed", slog.Time("refreshed_at", now))
		return fetched.Clone(), nil
	})
	if err != nil {
		return nil, err
	}
	return result.(domain.RateTable), nil
}

// StartRefreshing refreshes immediately and then on every tick of interval
// until ctx is cancelled. Failures are logged and the previous table stays
// in effect until the next attempt.
func (s *RatesService) StartRefreshing(ctx context.Context, interval time.Duration) {
	go func() {
		if _, err := s.Refresh(ctx); err != nil {
			s.LogError(ctx, err, "Initial rate refresh failed")
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.Refresh(ctx); err != nil {
					s.LogError(ctx, err, "Scheduled rate refresh failed")
				}
			}
		}
	}()
}

// validateRateTable rejects tables that are structurally broken or fail the
// plausibility check: every supported currency present and positive, and the
// USD rate above 1 base unit. A USD rate at or below 1 means the provider
// answered in the wrong direction or units.
func validateRateTable(table domain.RateTable) error {
	for _, code := range domain.SupportedCurrencies {
		rate, ok := table[code]
		if !ok || !rate.IsPositive() {
			return fmt.Errorf("%w: missing or non-positive rate for %s", apperrors.ErrValidation, code)
		}
	}
	if !table[domain.BaseCurrency].Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: base currency rate must be 1", apperrors.ErrValidation)
	}
	if table["USD"].LessThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: implausible USD rate %s", apperrors.ErrValidation, table["USD"])
	}
	return nil
}
