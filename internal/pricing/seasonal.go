package pricing

import "time"

const (
	// MinSeasonalObservations gates seasonal detection on the whole series.
	MinSeasonalObservations = 12
	// MinSeasonalMonths is how many eligible months are needed to compare against.
	MinSeasonalMonths = 3

	expensiveFactor = 1.15
	cheapFactor     = 0.85
)

// SeasonalPattern lists the months whose average price stands out from the
// average of monthly averages.
type SeasonalPattern struct {
	Detected        bool                   `json:"detected"`
	ExpensiveMonths []time.Month           `json:"expensive_months"`
	CheapMonths     []time.Month           `json:"cheap_months"`
	MonthlyMeans    map[time.Month]float64 `json:"monthly_means,omitempty"`
	OverallMean     float64                `json:"overall_mean"`
}

// DetectSeasonality buckets a filtered series by calendar month, merging years.
func DetectSeasonality(series []Observation) SeasonalPattern {
	none := SeasonalPattern{ExpensiveMonths: []time.Month{}, CheapMonths: []time.Month{}}

	byMonth := make(map[time.Month]bucket)
	total := 0
	for _, o := range series {
		if !o.Qualifies() {
			continue
		}
		b := byMonth[o.Date.Month()]
		b.sum += o.PurchasePrice
		b.count++
		byMonth[o.Date.Month()] = b
		total++
	}
	if total < MinSeasonalObservations {
		return none
	}

	means := make(map[time.Month]float64)
	eligible := make([]float64, 0, 12)
	for m := time.January; m <= time.December; m++ {
		b, ok := byMonth[m]
		if !ok || b.count < MinObservationsPerBucket {
			continue
		}
		means[m] = b.mean()
		eligible = append(eligible, means[m])
	}
	if len(eligible) < MinSeasonalMonths {
		return none
	}

	// mean of monthly means, not of every observation
	overall := mean(eligible)

	pattern := SeasonalPattern{
		ExpensiveMonths: []time.Month{},
		CheapMonths:     []time.Month{},
		MonthlyMeans:    means,
		OverallMean:     overall,
	}
	for m := time.January; m <= time.December; m++ {
		v, ok := means[m]
		if !ok {
			continue
		}
		switch {
		case v > overall*expensiveFactor:
			pattern.ExpensiveMonths = append(pattern.ExpensiveMonths, m)
		case v < overall*cheapFactor:
			pattern.CheapMonths = append(pattern.CheapMonths, m)
		}
	}
	pattern.Detected = len(pattern.ExpensiveMonths) > 0 || len(pattern.CheapMonths) > 0

	return pattern
}
