package pricing

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetActiveByCourt(ctx context.Context, courtID string) (*PricingRule, error)
	ListActive(ctx context.Context) ([]PricingRule, error)
	Create(ctx context.Context, rule *PricingRule) error
	Update(ctx context.Context, rule *PricingRule) error
	Deactivate(ctx context.Context, courtID string) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetActiveByCourt(ctx context.Context, courtID string) (*PricingRule, error) {
	var rule PricingRule
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND is_active = ?", courtID, true).
		Order("created_at DESC").
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *repository) ListActive(ctx context.Context) ([]PricingRule, error) {
	var rules []PricingRule
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sport, court_id").
		Find(&rules).Error
	return rules, err
}

func (r *repository) Create(ctx context.Context, rule *PricingRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repository) Update(ctx context.Context, rule *PricingRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *repository) Deactivate(ctx context.Context, courtID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&PricingRule{}).
		Where("court_id = ? AND is_active = ?", courtID, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PricingRule{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}
