package promos

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*PromoCode, error)
	List(ctx context.Context) ([]PromoCode, error)
	Create(ctx context.Context, promo *PromoCode) error
	Update(ctx context.Context, promo *PromoCode) error
	Deactivate(ctx context.Context, code string) (int64, error)

	// IncrementUsage bumps usage_count by one inside the given transaction,
	// guarded so the count can never pass the usage limit.
	IncrementUsage(tx *gorm.DB, code string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByCode(ctx context.Context, code string) (*PromoCode, error) {
	var promo PromoCode
	err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&promo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promo, nil
}

func (r *repository) List(ctx context.Context) ([]PromoCode, error) {
	var list []PromoCode
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repository) Create(ctx context.Context, promo *PromoCode) error {
	return r.db.WithContext(ctx).Create(promo).Error
}

func (r *repository) Update(ctx context.Context, promo *PromoCode) error {
	return r.db.WithContext(ctx).Save(promo).Error
}

func (r *repository) Deactivate(ctx context.Context, code string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&PromoCode{}).
		Where("code = ?", strings.ToUpper(code)).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *repository) IncrementUsage(tx *gorm.DB, code string) (int64, error) {
	result := tx.Model(&PromoCode{}).
		Where("code = ?", strings.ToUpper(code)).
		Where("usage_limit IS NULL OR usage_count < usage_limit").
		Update("usage_count", gorm.Expr("usage_count + 1"))
	return result.RowsAffected, result.Error
}
