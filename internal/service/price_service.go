package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"agroledger/internal/model"
	"agroledger/internal/pricing"
	"agroledger/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultCacheTTL matches how long the dashboard tolerates stale ledger data.
	DefaultCacheTTL = 5 * time.Minute
	// DefaultHistoryYears is how many calendar years feed the forecaster,
	// weekday advisor and seasonal detector (current year included).
	DefaultHistoryYears = 3

	minYear = 2000
	maxYear = 2100
)

// --- DTOs ---

type PeriodComparison struct {
	Product string                     `json:"product"`
	YearA   int                        `json:"year_a"`
	YearB   int                        `json:"year_b"`
	Buckets []pricing.BucketComparison `json:"buckets"`
	Summary pricing.PeriodSummary      `json:"summary"`
}

type PriceOverview struct {
	Product          string                  `json:"product"`
	ObservationCount int                     `json:"observation_count"`
	FirstDate        *time.Time              `json:"first_date"`
	LastDate         *time.Time              `json:"last_date"`
	Forecast         pricing.ForecastResult  `json:"forecast"`
	BestDay          pricing.WeekdayAdvisory `json:"best_day"`
	Seasonality      pricing.SeasonalPattern `json:"seasonality"`
}

// --- Interface ---

type PriceService interface {
	Products(ctx context.Context) ([]string, error)
	Forecast(ctx context.Context, product string) (pricing.ForecastResult, error)
	BestBuyingDay(ctx context.Context, product string) (pricing.WeekdayAdvisory, error)
	Seasonality(ctx context.Context, product string) (pricing.SeasonalPattern, error)
	ComparePeriods(ctx context.Context, product string, yearA, yearB int) (PeriodComparison, error)
	Overview(ctx context.Context, product string) (PriceOverview, error)
	OverviewRange(ctx context.Context, product string, from, to time.Time) (PriceOverview, error)
	Invalidate()
}

// PriceServiceOptions tunes caching and how far back history goes.
// Zero values pick the defaults; a negative CacheTTL disables caching.
type PriceServiceOptions struct {
	CacheTTL     time.Duration
	HistoryYears int
	Now          func() time.Time
}

// --- Implementation ---

type observationCacheEntry struct {
	observations []pricing.Observation
	expiresAt    time.Time
}

type priceService struct {
	tripRepo     repository.TripRepository
	cacheTTL     time.Duration
	historyYears int
	now          func() time.Time

	cache sync.Map // "from|to" -> observationCacheEntry
	group singleflight.Group
	// generation is bumped by Invalidate; loads started under an older
	// generation are never cached. mu orders the bump against cache stores.
	generation atomic.Uint64
	mu         sync.Mutex
}

func NewPriceService(tripRepo repository.TripRepository, opts PriceServiceOptions) PriceService {
	s := &priceService{
		tripRepo:     tripRepo,
		cacheTTL:     opts.CacheTTL,
		historyYears: opts.HistoryYears,
		now:          opts.Now,
	}
	if s.cacheTTL == 0 {
		s.cacheTTL = DefaultCacheTTL
	}
	if s.historyYears <= 0 {
		s.historyYears = DefaultHistoryYears
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *priceService) Products(ctx context.Context) ([]string, error) {
	products, err := s.tripRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if products == nil {
		products = []string{}
	}
	return products, nil
}

func (s *priceService) Forecast(ctx context.Context, product string) (pricing.ForecastResult, error) {
	series, err := s.history(ctx, product)
	if err != nil {
		return pricing.ForecastResult{}, err
	}
	return pricing.Forecast(series), nil
}

func (s *priceService) BestBuyingDay(ctx context.Context, product string) (pricing.WeekdayAdvisory, error) {
	series, err := s.history(ctx, product)
	if err != nil {
		return pricing.WeekdayAdvisory{}, err
	}
	return pricing.BestBuyingDay(series), nil
}

func (s *priceService) Seasonality(ctx context.Context, product string) (pricing.SeasonalPattern, error) {
	series, err := s.history(ctx, product)
	if err != nil {
		return pricing.SeasonalPattern{}, err
	}
	return pricing.DetectSeasonality(series), nil
}

func (s *priceService) ComparePeriods(ctx context.Context, product string, yearA, yearB int) (PeriodComparison, error) {
	product, err := normalizeProduct(product)
	if err != nil {
		return PeriodComparison{}, err
	}
	for _, y := range []int{yearA, yearB} {
		if y < minYear || y > maxYear {
			return PeriodComparison{}, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minYear, maxYear)
		}
	}

	fromA, toA := yearRange(yearA, yearA)
	observationsA, err := s.observations(ctx, fromA, toA)
	if err != nil {
		return PeriodComparison{}, err
	}
	fromB, toB := yearRange(yearB, yearB)
	observationsB, err := s.observations(ctx, fromB, toB)
	if err != nil {
		return PeriodComparison{}, err
	}

	seriesA := pricing.FilterSeries(observationsA, product)
	seriesB := pricing.FilterSeries(observationsB, product)

	return PeriodComparison{
		Product: product,
		YearA:   yearA,
		YearB:   yearB,
		Buckets: pricing.ComparePeriods(seriesA, seriesB),
		Summary: pricing.SummarizePeriods(seriesA, seriesB),
	}, nil
}

func (s *priceService) Overview(ctx context.Context, product string) (PriceOverview, error) {
	from, to := s.historyRange()
	return s.OverviewRange(ctx, product, from, to)
}

// OverviewRange runs every analysis over observations dated within [from, to].
func (s *priceService) OverviewRange(ctx context.Context, product string, from, to time.Time) (PriceOverview, error) {
	product, err := normalizeProduct(product)
	if err != nil {
		return PriceOverview{}, err
	}
	from, to = pricing.Day(from), pricing.Day(to)
	if to.Before(from) {
		return PriceOverview{}, fmt.Errorf("%w: range end %s is before its start %s",
			ErrInvalidInput, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	observations, err := s.observations(ctx, from, to)
	if err != nil {
		return PriceOverview{}, err
	}
	series := pricing.FilterSeries(observations, product)

	overview := PriceOverview{
		Product:          product,
		ObservationCount: len(series),
		Forecast:         pricing.Forecast(series),
		BestDay:          pricing.BestBuyingDay(series),
		Seasonality:      pricing.DetectSeasonality(series),
	}
	if len(series) > 0 {
		first, last := series[0].Date, series[len(series)-1].Date
		overview.FirstDate = &first
		overview.LastDate = &last
	}
	return overview, nil
}

// Invalidate drops every cached observation set. Loads already in flight
// still answer their callers but no longer populate the cache.
func (s *priceService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation.Add(1)
	s.cache.Range(func(key, _ any) bool {
		s.cache.Delete(key)
		return true
	})
}

// --- helpers ---

func normalizeProduct(product string) (string, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return "", fmt.Errorf("%w: product is required", ErrInvalidInput)
	}
	return product, nil
}

// yearRange spans Jan 1 of fromYear to Dec 31 of toYear.
func yearRange(fromYear, toYear int) (time.Time, time.Time) {
	return time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(toYear, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// historyRange covers the configured number of calendar years up to and
// including the current one.
func (s *priceService) historyRange() (time.Time, time.Time) {
	year := s.now().Year()
	return yearRange(year-s.historyYears+1, year)
}

func (s *priceService) history(ctx context.Context, product string) ([]pricing.Observation, error) {
	product, err := normalizeProduct(product)
	if err != nil {
		return nil, err
	}
	from, to := s.historyRange()

	observations, err := s.observations(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return pricing.FilterSeries(observations, product), nil
}

// observations returns every product's qualifying observations in [from, to],
// served from the TTL cache when possible. Concurrent misses for the same
// range share one query.
func (s *priceService) observations(ctx context.Context, from, to time.Time) ([]pricing.Observation, error) {
	key := from.Format(time.DateOnly) + "|" + to.Format(time.DateOnly)

	if s.cacheTTL > 0 {
		if cached, ok := s.cache.Load(key); ok {
			entry := cached.(observationCacheEntry)
			if s.now().Before(entry.expiresAt) {
				return entry.observations, nil
			}
			s.cache.Delete(key)
		}
	}

	gen := s.generation.Load()
	flight := key + "#" + strconv.FormatUint(gen, 10)
	loadCtx := context.WithoutCancel(ctx)

	ch := s.group.DoChan(flight, func() (any, error) {
		rows, err := s.tripRepo.ListObservations(loadCtx, from, to)
		if err != nil {
			return nil, err
		}
		observations := toObservations(rows)
		if s.cacheTTL > 0 {
			s.mu.Lock()
			if s.generation.Load() == gen {
				s.cache.Store(key, observationCacheEntry{
					observations: observations,
					expiresAt:    s.now().Add(s.cacheTTL),
				})
			}
			s.mu.Unlock()
		}
		return observations, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to load observations: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("failed to load observations: %w", res.Err)
		}
		return res.Val.([]pricing.Observation), nil
	}
}

func toObservations(rows []model.PriceObservationRow) []pricing.Observation {
	observations := make([]pricing.Observation, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		o, err := pricing.NewObservation(row.Date, row.Product, row.PurchasePrice.InexactFloat64())
		if err != nil {
			skipped++
			continue
		}
		observations = append(observations, o)
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("dropped observations without a purchase price")
	}
	return observations
}
