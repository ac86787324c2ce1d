package repository

import (
	"context"
	"fmt"

	"agroledger/internal/model"
	"agroledger/pkg/pagination"

	"gorm.io/gorm"
)

// AuditFilter narrows the audit trail. Empty fields match everything.
type AuditFilter struct {
	Actor  string
	Action string
}

func (f AuditFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Actor != "" {
		db = db.Where("actor = ?", f.Actor)
	}
	if f.Action != "" {
		db = db.Where("action = ?", f.Action)
	}
	return db
}

type AuditRepository interface {
	Log(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, filter AuditFilter, page pagination.Params) ([]model.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

// List returns the matching entries newest first, plus the total match count.
func (r *auditRepository) List(ctx context.Context, filter AuditFilter, page pagination.Params) ([]model.AuditLog, int64, error) {
	filtered := func() *gorm.DB {
		return GetDB(ctx, r.db).Model(&model.AuditLog{}).Scopes(filter.scope)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var entries []model.AuditLog
	if err := filtered().Scopes(page.Scope).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query audit entries: %w", err)
	}
	return entries, total, nil
}
