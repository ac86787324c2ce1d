package pricing

import "time"

const weeksPerMonth = 5

// BucketComparison aligns two periods on the same (month, week of month) slot.
// A price of 0 means the period had no observations in the slot.
type BucketComparison struct {
	Month         time.Month `json:"month"`
	WeekOfMonth   int        `json:"week_of_month"`
	PriceA        float64    `json:"price_period_a"`
	PriceB        float64    `json:"price_period_b"`
	Difference    float64    `json:"difference"`
	PercentChange float64    `json:"percent_change"`
}

// Signal classifies how period B's average price sits against period A's.
type Signal string

const (
	SignalNone   Signal = "none"
	SignalHigher Signal = "higher"
	SignalLower  Signal = "lower"
	SignalStable Signal = "stable"
)

const (
	higherThresholdPercent = 30.0
	lowerThresholdPercent  = -20.0
	stableThresholdPercent = 10.0
)

// PeriodSummary compares the overall average purchase price of two periods.
type PeriodSummary struct {
	AverageA      float64 `json:"average_period_a"`
	AverageB      float64 `json:"average_period_b"`
	Difference    float64 `json:"difference"`
	PercentChange float64 `json:"percent_change"`
	Signal        Signal  `json:"signal"`
}

type slot struct {
	month time.Month
	week  int
}

func bucketMeans(series []Observation) map[slot]float64 {
	sums := make(map[slot]bucket)
	for _, o := range series {
		if !o.Qualifies() {
			continue
		}
		k := slot{month: o.Date.Month(), week: WeekOfMonth(o.Date)}
		b := sums[k]
		b.sum += o.PurchasePrice
		b.count++
		sums[k] = b
	}

	means := make(map[slot]float64, len(sums))
	for k, b := range sums {
		means[k] = b.mean()
	}
	return means
}

// ComparePeriods lines up two filtered series, typically two different years of
// the same product, on (month, week of month) buckets. Only buckets with data in
// at least one period are returned, in calendar order.
func ComparePeriods(a, b []Observation) []BucketComparison {
	meansA := bucketMeans(a)
	meansB := bucketMeans(b)

	out := make([]BucketComparison, 0)
	for m := time.January; m <= time.December; m++ {
		for w := 1; w <= weeksPerMonth; w++ {
			k := slot{month: m, week: w}
			pa, pb := meansA[k], meansB[k]
			if pa == 0 && pb == 0 {
				continue
			}
			out = append(out, BucketComparison{
				Month:         m,
				WeekOfMonth:   w,
				PriceA:        pa,
				PriceB:        pb,
				Difference:    pb - pa,
				PercentChange: percentChange(pa, pb),
			})
		}
	}
	return out
}

// SummarizePeriods compares the plain averages of two filtered series.
func SummarizePeriods(a, b []Observation) PeriodSummary {
	avgA := mean(qualifying(a))
	avgB := mean(qualifying(b))

	summary := PeriodSummary{
		AverageA:      avgA,
		AverageB:      avgB,
		Difference:    avgB - avgA,
		PercentChange: percentChange(avgA, avgB),
		Signal:        SignalNone,
	}
	if avgA <= 0 || avgB <= 0 {
		return summary
	}

	switch change := summary.PercentChange; {
	case change > higherThresholdPercent:
		summary.Signal = SignalHigher
	case change < lowerThresholdPercent:
		summary.Signal = SignalLower
	case change < stableThresholdPercent && change > -stableThresholdPercent:
		summary.Signal = SignalStable
	}
	return summary
}
