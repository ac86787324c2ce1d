package repository

import (
	"context"
	"fmt"
	"time"

	"agroledger/internal/model"

	"gorm.io/gorm"
)

type TripRepository interface {
	ListObservations(ctx context.Context, from, to time.Time) ([]model.PriceObservationRow, error)
	ListProducts(ctx context.Context) ([]string, error)
	CreateBatch(ctx context.Context, trips []model.Trip, batchSize int) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

// ListObservations returns the purchase prices recorded between from and to
// (inclusive) across every product, oldest first. Zero prices mean "not
// recorded" and are left out.
func (r *tripRepository) ListObservations(ctx context.Context, from, to time.Time) ([]model.PriceObservationRow, error) {
	var rows []model.PriceObservationRow
	if err := GetDB(ctx, r.db).Model(&model.Trip{}).
		Select("date, product, purchase_price").
		Where("date >= ? AND date <= ? AND purchase_price > 0", from, to).
		Order("date ASC, created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	return rows, nil
}

func (r *tripRepository) ListProducts(ctx context.Context) ([]string, error) {
	var products []string
	if err := GetDB(ctx, r.db).Model(&model.Trip{}).
		Where("product <> ''").
		Distinct().
		Order("product ASC").
		Pluck("product", &products).Error; err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

func (r *tripRepository) CreateBatch(ctx context.Context, trips []model.Trip, batchSize int) error {
	if len(trips) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).CreateInBatches(&trips, batchSize).Error
}
