package courts

import (
	"context"
	"errors"

	"courtside/internal/shared/apperrors"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, activeOnly bool) ([]Court, error)
	ListByGroup(ctx context.Context, group string) ([]Court, error)
	CountAll(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, batch []Court) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Court, error) {
	var court Court
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&court).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("court", id)
		}
		return nil, err
	}
	return &court, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]Court, error) {
	var list []Court
	query := r.db.WithContext(ctx).Order("sport, id")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *repository) ListByGroup(ctx context.Context, group string) ([]Court, error) {
	var list []Court
	err := r.db.WithContext(ctx).
		Where("shared_group = ?", group).
		Order("id").
		Find(&list).Error
	return list, err
}

func (r *repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Court{}).Count(&count).Error
	return count, err
}

func (r *repository) CreateBatch(ctx context.Context, batch []Court) error {
	return r.db.WithContext(ctx).Create(&batch).Error
}
