package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finanza-app/finanza-backend/internal/apperrors"
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/finanza-app/finanza-backend/internal/core/services"
)

func plausibleTable() domain.RateTable {
	return domain.RateTable{
		"TRY": decimal.NewFromInt(1),
		"USD": decimal.RequireFromString("34.85"),
		"EUR": decimal.RequireFromString("37.90"),
		"GBP": decimal.RequireFromString("45.12"),
		"CAD": decimal.RequireFromString("25.60"),
	}
}

type RatesServiceTestSuite struct {
	suite.Suite
	mockSource *MockRateSource
	service    *services.RatesService
}

func (suite *RatesServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockRateSource)
	suite.service = services.NewRatesService(suite.mockSource)
}

func (suite *RatesServiceTestSuite) TestCurrent_StartsWithSeedTable() {
	table := suite.service.Current()

	suite.True(table["USD"].Equal(decimal.NewFromInt(34)))
	suite.True(table["TRY"].Equal(decimal.NewFromInt(1)))
	suite.Nil(suite.service.LastRefreshedAt())
}

func (suite *RatesServiceTestSuite) TestRefresh_InstallsFetchedTable() {
	ctx := context.Background()
	fetched := plausibleTable()

	suite.mockSource.On("FetchExchangeRates", ctx).Return(fetched, nil).Once()

	table, err := suite.service.Refresh(ctx)

	suite.Require().NoError(err)
	suite.True(table["USD"].Equal(fetched["USD"]))
	suite.True(suite.service.Current()["USD"].Equal(fetched["USD"]))
	suite.NotNil(suite.service.LastRefreshedAt())
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RatesServiceTestSuite) TestRefresh_FetchErrorKeepsPreviousTable() {
	ctx := context.Background()

	suite.mockSource.On("FetchExchangeRates", ctx).Return(nil, fmt.Errorf("provider down")).Once()

	_, err := suite.service.Refresh(ctx)

	suite.Require().Error(err)
	suite.True(suite.service.Current()["USD"].Equal(decimal.NewFromInt(34)), "seed table should survive a failed refresh")
	suite.Nil(suite.service.LastRefreshedAt())
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RatesServiceTestSuite) TestRefresh_RejectsImplausibleUSDRate() {
	ctx := context.Background()
	bogus := plausibleTable()
	// A USD rate at or below 1 means the provider answered in the wrong
	// direction.
	bogus["USD"] = decimal.RequireFromString("0.03")

	suite.mockSource.On("FetchExchangeRates", ctx).Return(bogus, nil).Once()

	_, err := suite.service.Refresh(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.True(suite.service.Current()["USD"].Equal(decimal.NewFromInt(34)))
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RatesServiceTestSuite) TestRefresh_RejectsMissingCurrency() {
	ctx := context.Background()
	incomplete := plausibleTable()
	delete(incomplete, "GBP")

	suite.mockSource.On("FetchExchangeRates", ctx).Return(incomplete, nil).Once()

	_, err := suite.service.Refresh(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RatesServiceTestSuite) TestCurrent_SnapshotIsIsolated() {
	snapshot := suite.service.Current()
	snapshot["USD"] = decimal.NewFromInt(999)

	suite.True(suite.service.Current()["USD"].Equal(decimal.NewFromInt(34)), "mutating a snapshot must not affect the service table")
}

func (suite *RatesServiceTestSuite) TestRefresh_ConcurrentCallersShareOneFetch() {
	ctx := context.Background()
	fetched := plausibleTable()

	// A slow fetch gives every caller time to join the in-flight one.
	suite.mockSource.On("FetchExchangeRates", ctx).
		Run(func(args mock.Arguments) { time.Sleep(100 * time.Millisecond) }).
		Return(fetched, nil)

	const callers = 10
	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = suite.service.Refresh(ctx)
		}(i)
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		suite.NoError(err)
	}
	suite.Less(len(suite.mockSource.Calls), callers, "concurrent refreshes should share in-flight fetches")
}

func TestRatesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RatesServiceTestSuite))
}
