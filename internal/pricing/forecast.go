package pricing

// Trend labels the direction of recent prices against older ones.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

const (
	// MinForecastObservations is the smallest series the forecaster will estimate from.
	MinForecastObservations = 4
	// ForecastWindow is the number of most recent observations considered.
	ForecastWindow = 8

	trendThresholdPercent = 10.0
	weightStart           = 1.0
	weightStep            = 0.5
)

// ForecastResult is the next-period price estimate. When Available is false
// every other field holds its zero value.
type ForecastResult struct {
	Available         bool    `json:"available"`
	EstimatedPrice    float64 `json:"estimated_price"`
	ConfidencePercent float64 `json:"confidence_percent"`
	RangeLow          float64 `json:"range_low"`
	RangeHigh         float64 `json:"range_high"`
	Trend             Trend   `json:"trend"`
	PercentChange     float64 `json:"percent_change"`
	LastObservedPrice float64 `json:"last_observed_price"`
	WindowSize        int     `json:"window_size"`
}

// Forecast estimates the next purchase price from the tail of a filtered,
// date-ordered series. Fewer than MinForecastObservations qualifying
// observations yields the zero result.
func Forecast(series []Observation) ForecastResult {
	prices := qualifying(series)
	if len(prices) < MinForecastObservations {
		return ForecastResult{}
	}
	if len(prices) > ForecastWindow {
		prices = prices[len(prices)-ForecastWindow:]
	}

	// newest observation carries the heaviest weight
	weights := make([]float64, len(prices))
	for i := range weights {
		weights[i] = weightStart + weightStep*float64(i)
	}
	estimate := weightedMean(prices, weights)

	half := len(prices) / 2
	older := mean(prices[:half])
	recent := mean(prices[half:])

	trend := TrendStable
	var change float64
	if older != 0 {
		change = percentChange(older, recent)
		switch {
		case change > trendThresholdPercent:
			trend = TrendRising
		case change < -trendThresholdPercent:
			trend = TrendFalling
		}
	}

	stddev := populationStdDev(prices)
	low := estimate - stddev
	if low < 0 {
		low = 0
	}

	var confidence float64
	if estimate != 0 {
		confidence = 100 - stddev/estimate*100
		if confidence < 0 {
			confidence = 0
		}
	}

	return ForecastResult{
		Available:         true,
		EstimatedPrice:    estimate,
		ConfidencePercent: confidence,
		RangeLow:          low,
		RangeHigh:         estimate + stddev,
		Trend:             trend,
		PercentChange:     change,
		LastObservedPrice: prices[len(prices)-1],
		WindowSize:        len(prices),
	}
}
