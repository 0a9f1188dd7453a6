package services

import (
	"context"
	"time"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
)

// RatesSvcFacade owns the process-wide exchange-rate table.
type RatesSvcFacade interface {
	// Current returns a snapshot of the rate table; safe for concurrent use.
	Current() domain.RateTable
	// LastRefreshedAt returns when the table was last replaced, nil before
	// the first successful refresh.
	LastRefreshedAt() *time.Time
	// Refresh fetches a new table and replaces the current one wholesale if
	// it passes the sanity check; on any failure the previous table is kept.
	// Concurrent calls share a single in-flight fetch.
	Refresh(ctx context.Context) (domain.RateTable, error)
}

// RateSource fetches a fresh rate table from an external provider.
type RateSource interface {
	FetchExchangeRates(ctx context.Context) (domain.RateTable, error)
}
