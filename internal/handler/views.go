package handler

import (
	"sort"
	"time"

	"agroledger/internal/display"
	"agroledger/internal/pricing"
	"agroledger/internal/service"
)

// Views put display names next to the numeric weekday and month indices the
// pricing core returns.

type DayRef struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type MonthRef struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type DayMean struct {
	DayRef
	MeanPrice float64 `json:"mean_price"`
}

type MonthMean struct {
	MonthRef
	MeanPrice float64 `json:"mean_price"`
}

type ForecastView struct {
	Product string `json:"product"`
	pricing.ForecastResult
	Advice string `json:"advice"`
}

type WeekdayView struct {
	Product          string    `json:"product"`
	Available        bool      `json:"available"`
	BestDay          *DayRef   `json:"best_day"`
	WorstDay         *DayRef   `json:"worst_day"`
	MeanPriceByDay   []DayMean `json:"mean_price_by_day"`
	EstimatedSavings float64   `json:"estimated_savings"`
	SavingsPercent   float64   `json:"savings_percent"`
	Advice           string    `json:"advice"`
}

type SeasonalityView struct {
	Product         string      `json:"product"`
	Detected        bool        `json:"detected"`
	ExpensiveMonths []MonthRef  `json:"expensive_months"`
	CheapMonths     []MonthRef  `json:"cheap_months"`
	MonthlyMeans    []MonthMean `json:"monthly_means"`
	OverallMean     float64     `json:"overall_mean"`
	Advice          string      `json:"advice"`
}

type BucketView struct {
	Month         MonthRef `json:"month"`
	WeekOfMonth   int      `json:"week_of_month"`
	PriceA        float64  `json:"price_period_a"`
	PriceB        float64  `json:"price_period_b"`
	Difference    float64  `json:"difference"`
	PercentChange float64  `json:"percent_change"`
}

type ComparisonView struct {
	Product string                `json:"product"`
	YearA   int                   `json:"year_a"`
	YearB   int                   `json:"year_b"`
	Buckets []BucketView          `json:"buckets"`
	Summary pricing.PeriodSummary `json:"summary"`
	Advice  string                `json:"advice"`
}

type OverviewView struct {
	Product          string          `json:"product"`
	ObservationCount int             `json:"observation_count"`
	FirstDate        string          `json:"first_date,omitempty"`
	LastDate         string          `json:"last_date,omitempty"`
	Forecast         ForecastView    `json:"forecast"`
	BestDay          WeekdayView     `json:"best_day"`
	Seasonality      SeasonalityView `json:"seasonality"`
}

func dayRef(l display.Locale, d time.Weekday) DayRef {
	return DayRef{Index: int(d), Name: display.WeekdayName(l, d)}
}

func monthRef(l display.Locale, m time.Month) MonthRef {
	return MonthRef{Index: int(m), Name: display.MonthName(l, m)}
}

func monthRefs(l display.Locale, months []time.Month) []MonthRef {
	refs := make([]MonthRef, 0, len(months))
	for _, m := range months {
		refs = append(refs, monthRef(l, m))
	}
	return refs
}

func toForecastView(l display.Locale, product string, f pricing.ForecastResult) ForecastView {
	return ForecastView{
		Product:        product,
		ForecastResult: f,
		Advice:         display.ForecastAdvice(l, f),
	}
}

func toWeekdayView(l display.Locale, product string, w pricing.WeekdayAdvisory) WeekdayView {
	view := WeekdayView{
		Product:          product,
		Available:        w.Available,
		MeanPriceByDay:   []DayMean{},
		EstimatedSavings: w.EstimatedSavings,
		SavingsPercent:   w.SavingsPercent,
		Advice:           display.WeekdayAdvice(l, w),
	}
	if !w.Available {
		return view
	}

	best, worst := dayRef(l, w.BestDay), dayRef(l, w.WorstDay)
	view.BestDay, view.WorstDay = &best, &worst
	for day, m := range w.MeanPriceByDay {
		view.MeanPriceByDay = append(view.MeanPriceByDay, DayMean{DayRef: dayRef(l, day), MeanPrice: m})
	}
	// Monday first, Sunday last
	sort.Slice(view.MeanPriceByDay, func(i, j int) bool {
		return mondayFirst(view.MeanPriceByDay[i].Index) < mondayFirst(view.MeanPriceByDay[j].Index)
	})
	return view
}

func mondayFirst(day int) int {
	return (day + 6) % 7
}

func toSeasonalityView(l display.Locale, product string, s pricing.SeasonalPattern) SeasonalityView {
	view := SeasonalityView{
		Product:         product,
		Detected:        s.Detected,
		ExpensiveMonths: monthRefs(l, s.ExpensiveMonths),
		CheapMonths:     monthRefs(l, s.CheapMonths),
		MonthlyMeans:    []MonthMean{},
		OverallMean:     s.OverallMean,
		Advice:          display.SeasonalAdvice(l, s),
	}
	for m := time.January; m <= time.December; m++ {
		if mean, ok := s.MonthlyMeans[m]; ok {
			view.MonthlyMeans = append(view.MonthlyMeans, MonthMean{MonthRef: monthRef(l, m), MeanPrice: mean})
		}
	}
	return view
}

func toComparisonView(l display.Locale, cmp service.PeriodComparison) ComparisonView {
	buckets := make([]BucketView, 0, len(cmp.Buckets))
	for _, b := range cmp.Buckets {
		buckets = append(buckets, BucketView{
			Month:         monthRef(l, b.Month),
			WeekOfMonth:   b.WeekOfMonth,
			PriceA:        b.PriceA,
			PriceB:        b.PriceB,
			Difference:    b.Difference,
			PercentChange: b.PercentChange,
		})
	}
	return ComparisonView{
		Product: cmp.Product,
		YearA:   cmp.YearA,
		YearB:   cmp.YearB,
		Buckets: buckets,
		Summary: cmp.Summary,
		Advice:  display.SignalAdvice(l, cmp.Summary),
	}
}

func toOverviewView(l display.Locale, o service.PriceOverview) OverviewView {
	view := OverviewView{
		Product:          o.Product,
		ObservationCount: o.ObservationCount,
		Forecast:         toForecastView(l, o.Product, o.Forecast),
		BestDay:          toWeekdayView(l, o.Product, o.BestDay),
		Seasonality:      toSeasonalityView(l, o.Product, o.Seasonality),
	}
	if o.FirstDate != nil {
		view.FirstDate = o.FirstDate.Format(time.DateOnly)
	}
	if o.LastDate != nil {
		view.LastDate = o.LastDate.Format(time.DateOnly)
	}
	return view
}
