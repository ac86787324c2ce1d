package pricing

import (
	"time"
)

const banana = "Plátano"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func obs(date time.Time, price float64) Observation {
	return Observation{Date: date, Product: banana, PurchasePrice: price}
}

// daily builds one observation per consecutive day starting at start.
func daily(start time.Time, prices ...float64) []Observation {
	out := make([]Observation, 0, len(prices))
	for i, p := range prices {
		out = append(out, obs(start.AddDate(0, 0, i), p))
	}
	return out
}
