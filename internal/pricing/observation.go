// Package pricing holds the price-intelligence core: pure functions over a
// historical series of purchase prices. Nothing in here performs I/O or keeps
// state between calls.
package pricing

import (
	"errors"
	"time"
)

// ErrNonPositivePrice is returned when an observation carries a purchase price
// of zero or less. The ledger uses those values for missing entries.
var ErrNonPositivePrice = errors.New("purchase price must be greater than zero")

// Observation is one historical purchase of a product at a given price per kg.
type Observation struct {
	Date          time.Time `json:"date"`
	Product       string    `json:"product"`
	PurchasePrice float64   `json:"purchase_price"`
}

// NewObservation builds a qualifying observation, truncating the date to the
// calendar day.
func NewObservation(date time.Time, product string, purchasePrice float64) (Observation, error) {
	if purchasePrice <= 0 {
		return Observation{}, ErrNonPositivePrice
	}
	return Observation{
		Date:          Day(date),
		Product:       product,
		PurchasePrice: purchasePrice,
	}, nil
}

// Qualifies reports whether the observation may take part in any aggregate.
func (o Observation) Qualifies() bool {
	return o.PurchasePrice > 0
}

// Day drops the time-of-day component, keeping the calendar date as seen in
// the timestamp's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekOfMonth returns the 1-5 bucket of the day within its month.
func WeekOfMonth(t time.Time) int {
	return (t.Day()-1)/7 + 1
}

func qualifying(series []Observation) []float64 {
	prices := make([]float64, 0, len(series))
	for _, o := range series {
		if o.Qualifies() {
			prices = append(prices, o.PurchasePrice)
		}
	}
	return prices
}
