package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-03 is a Monday.
var monday = day(2025, time.March, 3)

func onWeekday(weekOffset int, wd time.Weekday, price float64) Observation {
	offset := (int(wd) - int(time.Monday) + 7) % 7
	return obs(monday.AddDate(0, 0, weekOffset*7+offset), price)
}

func TestBestBuyingDay_Example(t *testing.T) {
	series := []Observation{
		onWeekday(0, time.Monday, 100),
		onWeekday(0, time.Tuesday, 200),
		onWeekday(1, time.Monday, 100),
		onWeekday(1, time.Tuesday, 200),
	}

	got := BestBuyingDay(series)

	require.True(t, got.Available)
	assert.Equal(t, time.Monday, got.BestDay)
	assert.Equal(t, time.Tuesday, got.WorstDay)
	assert.InDelta(t, 100, got.EstimatedSavings, 1e-9)
	assert.InDelta(t, 50, got.SavingsPercent, 1e-9)
	assert.Equal(t, map[time.Weekday]float64{time.Monday: 100, time.Tuesday: 200}, got.MeanPriceByDay)
}

func TestBestBuyingDay_Threshold(t *testing.T) {
	series := []Observation{
		onWeekday(0, time.Wednesday, 50),
		onWeekday(0, time.Friday, 300),
		onWeekday(1, time.Friday, 310),
		onWeekday(0, time.Saturday, 280),
		onWeekday(1, time.Saturday, 260),
	}

	got := BestBuyingDay(series)

	require.True(t, got.Available)
	assert.NotContains(t, got.MeanPriceByDay, time.Wednesday, "a single observation is not enough")
	assert.Contains(t, got.MeanPriceByDay, time.Friday)
	assert.Contains(t, got.MeanPriceByDay, time.Saturday)
	assert.Equal(t, time.Saturday, got.BestDay)
	assert.InDelta(t, 35, got.EstimatedSavings, 1e-9)
}

func TestBestBuyingDay_SingleEligibleDay(t *testing.T) {
	got := BestBuyingDay([]Observation{
		onWeekday(0, time.Thursday, 120),
		onWeekday(1, time.Thursday, 140),
		onWeekday(0, time.Sunday, 10),
	})

	require.True(t, got.Available)
	assert.Equal(t, time.Thursday, got.BestDay)
	assert.Equal(t, time.Thursday, got.WorstDay)
	assert.Zero(t, got.EstimatedSavings)
}

func TestBestBuyingDay_TieResolvesToEarlierWeekday(t *testing.T) {
	got := BestBuyingDay([]Observation{
		onWeekday(0, time.Sunday, 100),
		onWeekday(1, time.Sunday, 100),
		onWeekday(0, time.Tuesday, 100),
		onWeekday(1, time.Tuesday, 100),
	})

	assert.Equal(t, time.Tuesday, got.BestDay)
	assert.Equal(t, time.Tuesday, got.WorstDay)
}

func TestBestBuyingDay_Empty(t *testing.T) {
	assert.Equal(t, WeekdayAdvisory{}, BestBuyingDay(nil))
	assert.Equal(t, WeekdayAdvisory{}, BestBuyingDay([]Observation{onWeekday(0, time.Monday, 100)}))
	assert.Equal(t, WeekdayAdvisory{}, BestBuyingDay([]Observation{
		onWeekday(0, time.Monday, 0),
		onWeekday(1, time.Monday, 0),
	}))
}
