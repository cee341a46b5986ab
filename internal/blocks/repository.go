package blocks

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, block *BlockedSlot) error
	Delete(ctx context.Context, courtID, workday, slotLabel string) (int64, error)
	Exists(ctx context.Context, courtID, workday, slotLabel string) (bool, error)
	ListLabels(ctx context.Context, courtID, workday string) ([]string, error)
	List(ctx context.Context, courtID, workday string) ([]BlockedSlot, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, block *BlockedSlot) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *repository) Delete(ctx context.Context, courtID, workday, slotLabel string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("court_id = ? AND workday_date = ? AND slot_label = ?", courtID, workday, slotLabel).
		Delete(&BlockedSlot{})
	return result.RowsAffected, result.Error
}

func (r *repository) Exists(ctx context.Context, courtID, workday, slotLabel string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BlockedSlot{}).
		Where("court_id = ? AND workday_date = ? AND slot_label = ?", courtID, workday, slotLabel).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListLabels(ctx context.Context, courtID, workday string) ([]string, error) {
	var labels []string
	err := r.db.WithContext(ctx).Model(&BlockedSlot{}).
		Where("court_id = ? AND workday_date = ?", courtID, workday).
		Order("slot_label").
		Pluck("slot_label", &labels).Error
	return labels, err
}

func (r *repository) List(ctx context.Context, courtID, workday string) ([]BlockedSlot, error) {
	var list []BlockedSlot
	query := r.db.WithContext(ctx).Order("workday_date, slot_label")
	if courtID != "" {
		query = query.Where("court_id = ?", courtID)
	}
	if workday != "" {
		query = query.Where("workday_date = ?", workday)
	}
	err := query.Find(&list).Error
	return list, err
}
