package repository

import (
	"context"

	"agroledger/internal/model"
	"agroledger/pkg/pagination"

	"gorm.io/gorm"
)

type PriceNoteRepository interface {
	Create(ctx context.Context, note *model.PriceNote) error
	List(ctx context.Context, product string, page pagination.Params) ([]model.PriceNote, int64, error)
}

type priceNoteRepository struct {
	db *gorm.DB
}

func NewPriceNoteRepository(db *gorm.DB) PriceNoteRepository {
	return &priceNoteRepository{db: db}
}

func (r *priceNoteRepository) Create(ctx context.Context, note *model.PriceNote) error {
	return GetDB(ctx, r.db).Create(note).Error
}

func (r *priceNoteRepository) List(ctx context.Context, product string, page pagination.Params) ([]model.PriceNote, int64, error) {
	var notes []model.PriceNote
	var total int64

	db := GetDB(ctx, r.db)
	filtered := func() *gorm.DB {
		query := db.Model(&model.PriceNote{})
		if product != "" {
			query = query.Where("product = ?", product)
		}
		return query
	}

	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := filtered().Scopes(page.Scope).Order("date DESC, created_at DESC").Find(&notes).Error; err != nil {
		return nil, 0, err
	}

	return notes, total, nil
}
