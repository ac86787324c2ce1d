package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObservation(t *testing.T) {
	o, err := NewObservation(time.Date(2025, time.March, 4, 17, 45, 0, 0, time.UTC), banana, 1800)
	require.NoError(t, err)
	assert.Equal(t, day(2025, time.March, 4), o.Date)
	assert.True(t, o.Qualifies())

	for _, price := range []float64{0, -5} {
		_, err := NewObservation(day(2025, time.March, 4), banana, price)
		assert.ErrorIs(t, err, ErrNonPositivePrice)
	}
}

func TestWeekOfMonth(t *testing.T) {
	tests := []struct {
		day  int
		want int
	}{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3}, {22, 4}, {28, 4}, {29, 5}, {31, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekOfMonth(day(2025, time.January, tt.day)), "day %d", tt.day)
	}
}

func TestFilterSeries(t *testing.T) {
	input := []Observation{
		obs(day(2025, time.March, 3), 1500),
		{Date: day(2025, time.January, 2), Product: "Mango", PurchasePrice: 900},
		obs(day(2025, time.January, 5), 1200),
		obs(day(2025, time.February, 1), 0),
		{Date: day(2025, time.February, 2), Product: "plátano", PurchasePrice: 1300},
		obs(day(2025, time.February, 9), -10),
		obs(day(2025, time.January, 5), 1250),
	}
	original := append([]Observation(nil), input...)

	got := FilterSeries(input, banana)

	require.Len(t, got, 3)
	for i, o := range got {
		assert.Equal(t, banana, o.Product)
		assert.Greater(t, o.PurchasePrice, 0.0)
		if i > 0 {
			assert.False(t, o.Date.Before(got[i-1].Date), "series must be date ordered")
		}
	}
	// same-day observations keep input order
	assert.Equal(t, 1200.0, got[0].PurchasePrice)
	assert.Equal(t, 1250.0, got[1].PurchasePrice)
	assert.Equal(t, original, input, "input must not be modified")
}

func TestFilterSeries_Empty(t *testing.T) {
	assert.Empty(t, FilterSeries(nil, banana))
	assert.Empty(t, FilterSeries([]Observation{{Date: day(2025, 1, 1), Product: "Mango", PurchasePrice: 10}}, banana))
}
