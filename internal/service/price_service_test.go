package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"agroledger/internal/model"
	"agroledger/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const banana = "Plátano"

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func row(date string, product string, price int64) model.PriceObservationRow {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return model.PriceObservationRow{Date: d, Product: product, PurchasePrice: decimal.NewFromInt(price)}
}

func historyRows() []model.PriceObservationRow {
	return []model.PriceObservationRow{
		row("2025-03-03", banana, 100),
		row("2025-03-04", "Papaya", 900),
		row("2025-03-10", banana, 100),
		row("2025-03-17", banana, 0),
		row("2025-03-24", banana, 100),
		row("2025-03-31", banana, 100),
	}
}

func newTestPriceService(repo *mockTripRepo, ttl time.Duration) (PriceService, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)}
	svc := NewPriceService(repo, PriceServiceOptions{CacheTTL: ttl, Now: clock.Now})
	return svc, clock
}

var (
	historyFrom = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	historyTo   = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func TestPriceService_ForecastUsesProductHistory(t *testing.T) {
	repo := new(mockTripRepo)
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).Return(historyRows(), nil).Once()
	svc, _ := newTestPriceService(repo, 0)

	result, err := svc.Forecast(context.Background(), "  "+banana+" ")
	require.NoError(t, err)

	assert.True(t, result.Available)
	assert.InDelta(t, 100, result.EstimatedPrice, 1e-9)
	assert.Equal(t, pricing.TrendStable, result.Trend)
	assert.Equal(t, 4, result.WindowSize)
	repo.AssertExpectations(t)
}

func TestPriceService_CachesObservationsPerRange(t *testing.T) {
	repo := new(mockTripRepo)
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).Return(historyRows(), nil).Twice()
	svc, clock := newTestPriceService(repo, time.Minute)
	ctx := context.Background()

	_, err := svc.Forecast(ctx, banana)
	require.NoError(t, err)
	_, err = svc.BestBuyingDay(ctx, banana)
	require.NoError(t, err)
	_, err = svc.Seasonality(ctx, "Papaya")
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "ListObservations", 1)

	clock.Advance(2 * time.Minute)
	_, err = svc.Forecast(ctx, banana)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "ListObservations", 2)
}

func TestPriceService_NegativeTTLDisablesCache(t *testing.T) {
	repo := new(mockTripRepo)
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).Return(historyRows(), nil)
	svc, _ := newTestPriceService(repo, -1)

	for i := 0; i < 3; i++ {
		_, err := svc.Forecast(context.Background(), banana)
		require.NoError(t, err)
	}
	repo.AssertNumberOfCalls(t, "ListObservations", 3)
}

func TestPriceService_Invalidate(t *testing.T) {
	repo := new(mockTripRepo)
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).Return(historyRows(), nil)
	svc, _ := newTestPriceService(repo, time.Hour)
	ctx := context.Background()

	_, err := svc.Forecast(ctx, banana)
	require.NoError(t, err)
	svc.Invalidate()
	_, err = svc.Forecast(ctx, banana)
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "ListObservations", 2)
}

func TestPriceService_InvalidateDuringLoad(t *testing.T) {
	repo := new(mockTripRepo)
	started := make(chan struct{})
	release := make(chan struct{})
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]model.PriceObservationRow{}, nil).Once()
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).Return(historyRows(), nil).Once()
	svc, _ := newTestPriceService(repo, time.Hour)
	ctx := context.Background()

	done := make(chan pricing.ForecastResult)
	go func() {
		f, err := svc.Forecast(ctx, banana)
		assert.NoError(t, err)
		done <- f
	}()

	<-started
	svc.Invalidate()
	close(release)
	assert.False(t, (<-done).Available)

	f, err := svc.Forecast(ctx, banana)
	require.NoError(t, err)
	assert.True(t, f.Available)
	repo.AssertNumberOfCalls(t, "ListObservations", 2)
}

func TestPriceService_CancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	repo := new(mockTripRepo)
	started := make(chan struct{})
	release := make(chan struct{})
	var loadCtxErr error
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
			loadCtxErr = args.Get(0).(context.Context).Err()
		}).
		Return(historyRows(), nil).Once()
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).Return(historyRows(), nil)
	svc, _ := newTestPriceService(repo, time.Hour)

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error)
	go func() {
		_, err := svc.Forecast(firstCtx, banana)
		firstErr <- err
	}()
	<-started

	second := make(chan pricing.ForecastResult)
	go func() {
		f, err := svc.Forecast(context.Background(), banana)
		assert.NoError(t, err)
		second <- f
	}()

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.True(t, (<-second).Available)
	assert.NoError(t, loadCtxErr)
}

func TestPriceService_InsufficientDataIsNotAnError(t *testing.T) {
	repo := new(mockTripRepo)
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).Return([]model.PriceObservationRow{}, nil)
	svc, _ := newTestPriceService(repo, 0)
	ctx := context.Background()

	forecast, err := svc.Forecast(ctx, "Mango")
	require.NoError(t, err)
	assert.False(t, forecast.Available)

	advisory, err := svc.BestBuyingDay(ctx, "Mango")
	require.NoError(t, err)
	assert.False(t, advisory.Available)

	pattern, err := svc.Seasonality(ctx, "Mango")
	require.NoError(t, err)
	assert.False(t, pattern.Detected)
}

func TestPriceService_RequiresProduct(t *testing.T) {
	repo := new(mockTripRepo)
	svc, _ := newTestPriceService(repo, 0)
	ctx := context.Background()

	_, err := svc.Forecast(ctx, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Overview(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.ComparePeriods(ctx, "", 2024, 2025)
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.AssertNotCalled(t, "ListObservations", mock.Anything, mock.Anything, mock.Anything)
}

func TestPriceService_WrapsStorageErrors(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := new(mockTripRepo)
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).Return(nil, dbErr)
	svc, _ := newTestPriceService(repo, 0)

	_, err := svc.Forecast(context.Background(), banana)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to load observations")
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestPriceService_ComparePeriods(t *testing.T) {
	from2024 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to2024 := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	from2025 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to2025 := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	repo := new(mockTripRepo)
	repo.On("ListObservations", mock.Anything, from2024, to2024).Return([]model.PriceObservationRow{
		row("2024-01-02", banana, 100),
		row("2024-01-03", "Papaya", 500),
	}, nil).Once()
	repo.On("ListObservations", mock.Anything, from2025, to2025).Return([]model.PriceObservationRow{
		row("2025-01-06", banana, 150),
		row("2025-02-20", banana, 120),
	}, nil).Once()
	svc, _ := newTestPriceService(repo, 0)

	cmp, err := svc.ComparePeriods(context.Background(), banana, 2024, 2025)
	require.NoError(t, err)

	assert.Equal(t, banana, cmp.Product)
	assert.Equal(t, 2024, cmp.YearA)
	assert.Equal(t, 2025, cmp.YearB)
	require.Len(t, cmp.Buckets, 2)

	jan := cmp.Buckets[0]
	assert.Equal(t, time.January, jan.Month)
	assert.Equal(t, 1, jan.WeekOfMonth)
	assert.InDelta(t, 100, jan.PriceA, 1e-9)
	assert.InDelta(t, 150, jan.PriceB, 1e-9)
	assert.InDelta(t, 50, jan.PercentChange, 1e-9)

	feb := cmp.Buckets[1]
	assert.Equal(t, time.February, feb.Month)
	assert.Equal(t, 3, feb.WeekOfMonth)
	assert.Zero(t, feb.PriceA)
	assert.Zero(t, feb.PercentChange)

	assert.InDelta(t, 100, cmp.Summary.AverageA, 1e-9)
	assert.InDelta(t, 135, cmp.Summary.AverageB, 1e-9)
	assert.Equal(t, pricing.SignalHigher, cmp.Summary.Signal)
	repo.AssertExpectations(t)
}

func TestPriceService_ComparePeriodsRejectsYears(t *testing.T) {
	svc, _ := newTestPriceService(new(mockTripRepo), 0)

	_, err := svc.ComparePeriods(context.Background(), banana, 1999, 2025)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.ComparePeriods(context.Background(), banana, 2025, 2101)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPriceService_Overview(t *testing.T) {
	repo := new(mockTripRepo)
	repo.On("ListObservations", mock.Anything, historyFrom, historyTo).Return(historyRows(), nil).Once()
	svc, _ := newTestPriceService(repo, 0)

	overview, err := svc.Overview(context.Background(), banana)
	require.NoError(t, err)

	assert.Equal(t, banana, overview.Product)
	assert.Equal(t, 4, overview.ObservationCount)
	require.NotNil(t, overview.FirstDate)
	require.NotNil(t, overview.LastDate)
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), *overview.FirstDate)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), *overview.LastDate)
	assert.True(t, overview.Forecast.Available)
	assert.True(t, overview.BestDay.Available)
	assert.Equal(t, time.Monday, overview.BestDay.BestDay)
	assert.False(t, overview.Seasonality.Detected)
	repo.AssertExpectations(t)
}

func TestPriceService_Products(t *testing.T) {
	repo := new(mockTripRepo)
	repo.On("ListProducts", mock.Anything).Return(nil, nil).Once()
	svc, _ := newTestPriceService(repo, 0)

	products, err := svc.Products(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	repo.On("ListProducts", mock.Anything).Return(nil, errors.New("boom")).Once()
	_, err = svc.Products(context.Background())
	assert.ErrorContains(t, err, "failed to fetch products")
}

func TestPriceService_OverviewRange(t *testing.T) {
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	repo := new(mockTripRepo)
	repo.On("ListObservations", mock.Anything, from, to).Return(historyRows()[:3], nil).Once()
	svc, _ := newTestPriceService(repo, 0)

	overview, err := svc.OverviewRange(context.Background(), banana, from.Add(15*time.Hour), to)
	require.NoError(t, err)
	assert.Equal(t, 2, overview.ObservationCount)
	assert.False(t, overview.Forecast.Available)

	_, err = svc.OverviewRange(context.Background(), banana, to, from)
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertExpectations(t)
}
