package pricing

import "time"

// MinObservationsPerBucket is how many observations a weekday or month needs
// before its mean is trusted.
const MinObservationsPerBucket = 2

// calendarWeek orders weekdays Monday first; ties resolve to the earlier day.
var calendarWeek = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekdayAdvisory names the historically cheapest weekday to buy on.
type WeekdayAdvisory struct {
	Available        bool                     `json:"available"`
	BestDay          time.Weekday             `json:"best_day"`
	WorstDay         time.Weekday             `json:"worst_day"`
	MeanPriceByDay   map[time.Weekday]float64 `json:"mean_price_by_day"`
	EstimatedSavings float64                  `json:"estimated_savings"`
	SavingsPercent   float64                  `json:"savings_percent"`
}

type bucket struct {
	sum   float64
	count int
}

func (b bucket) mean() float64 {
	if b.count == 0 {
		return 0
	}
	return b.sum / float64(b.count)
}

// BestBuyingDay groups a filtered series by weekday and compares the means of
// the weekdays with enough observations.
func BestBuyingDay(series []Observation) WeekdayAdvisory {
	byDay := make(map[time.Weekday]bucket)
	for _, o := range series {
		if !o.Qualifies() {
			continue
		}
		b := byDay[o.Date.Weekday()]
		b.sum += o.PurchasePrice
		b.count++
		byDay[o.Date.Weekday()] = b
	}

	means := make(map[time.Weekday]float64)
	var best, worst time.Weekday
	found := false
	for _, day := range calendarWeek {
		b, ok := byDay[day]
		if !ok || b.count < MinObservationsPerBucket {
			continue
		}
		m := b.mean()
		means[day] = m
		if !found {
			best, worst, found = day, day, true
			continue
		}
		if m < means[best] {
			best = day
		}
		if m > means[worst] {
			worst = day
		}
	}
	if !found {
		return WeekdayAdvisory{}
	}

	savings := means[worst] - means[best]
	if savings < 0 {
		savings = 0
	}
	var savingsPercent float64
	if means[worst] > 0 {
		savingsPercent = savings / means[worst] * 100
	}

	return WeekdayAdvisory{
		Available:        true,
		BestDay:          best,
		WorstDay:         worst,
		MeanPriceByDay:   means,
		EstimatedSavings: savings,
		SavingsPercent:   savingsPercent,
	}
}
