package pricing

import "slices"

// FilterSeries returns the qualifying observations of product, oldest first.
// Observations sharing a date keep their input order. The input is not modified.
func FilterSeries(observations []Observation, product string) []Observation {
	series := make([]Observation, 0)
	for _, o := range observations {
		if o.Product != product || !o.Qualifies() {
			continue
		}
		series = append(series, o)
	}

	slices.SortStableFunc(series, func(a, b Observation) int {
		return a.Date.Compare(b.Date)
	})
	return series
}
