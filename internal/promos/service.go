package promos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courtside/internal/schedule"
	"courtside/internal/shared/apperrors"

	"gorm.io/gorm"
)

// Service interface defines the contract for promo code logic.
// Validate is pure and safe to call repeatedly for previews; Apply is the
// only path that mutates usage_count and runs once, at booking commit.
type Service interface {
	Validate(ctx context.Context, code string, orderAmount int64, sport string, today time.Time) (*Validation, error)
	Apply(tx *gorm.DB, code string) error

	// Admin code management
	ListCodes(ctx context.Context) ([]PromoCode, error)
	CreateCode(ctx context.Context, req PromoRequest) (*PromoCode, error)
	UpdateCode(ctx context.Context, code string, req PromoRequest) (*PromoCode, error)
	DeactivateCode(ctx context.Context, code string) error
}

type service struct {
	repo    Repository
	workday *schedule.Workday
}

func NewService(repo Repository, workday *schedule.Workday) Service {
	return &service{repo: repo, workday: workday}
}

// Validate checks a code against an order. Checks short-circuit in a fixed
// order; the first failing check becomes the rejection reason.
func (s *service) Validate(ctx context.Context, code string, orderAmount int64, sport string, today time.Time) (*Validation, error) {
	promo, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up promo code: %w", err)
	}

	reject := func(reason string) *Validation {
		return &Validation{Valid: false, Reason: reason, Final: orderAmount}
	}

	if promo == nil {
		return reject("Invalid promo code"), nil
	}
	if !promo.IsActive {
		return reject("Promo code is not active"), nil
	}
	if promo.ValidFrom != nil && today.Before(*promo.ValidFrom) {
		return reject("Promo code is not yet valid"), nil
	}
	if promo.ValidUntil != nil && today.After(*promo.ValidUntil) {
		return reject("Promo code has expired"), nil
	}
	if promo.UsageLimit != nil && promo.UsageCount >= *promo.UsageLimit {
		return reject("Promo code usage limit exceeded"), nil
	}
	if promo.MinAmount != nil && orderAmount < *promo.MinAmount {
		return reject(fmt.Sprintf("Minimum booking amount of %d required", *promo.MinAmount)), nil
	}
	if !promo.AppliesTo(sport) {
		return reject(fmt.Sprintf("Promo code not applicable to %s", sport)), nil
	}

	discount := Discount(promo, orderAmount)
	return &Validation{
		Valid:    true,
		Promo:    promo,
		Discount: discount,
		Final:    orderAmount - discount,
	}, nil
}

// Discount computes the discount a promo grants on an order amount.
// Percentage discounts floor and respect the max cap; fixed discounts
// never exceed the order, so the final total cannot go negative.
func Discount(promo *PromoCode, orderAmount int64) int64 {
	switch promo.DiscountType {
	case DiscountTypePercentage:
		discount := orderAmount * promo.DiscountValue / 100
		if promo.MaxDiscount != nil && discount > *promo.MaxDiscount {
			discount = *promo.MaxDiscount
		}
		return discount
	default: // fixed_amount
		if promo.DiscountValue > orderAmount {
			return orderAmount
		}
		return promo.DiscountValue
	}
}

// Apply increments usage_count by exactly one inside the caller's
// transaction. A zero row count means the usage limit was reached between
// preview and commit; the whole booking transaction rolls back.
func (s *service) Apply(tx *gorm.DB, code string) error {
	affected, err := s.repo.IncrementUsage(tx, code)
	if err != nil {
		return fmt.Errorf("failed to apply promo code: %w", err)
	}
	if affected == 0 {
		return apperrors.NewValidationError("promo_code", "promo code usage limit exceeded")
	}
	return nil
}

func (s *service) ListCodes(ctx context.Context) ([]PromoCode, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateCode(ctx context.Context, req PromoRequest) (*PromoCode, error) {
	existing, err := s.repo.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up promo code: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("code", "promo code already exists")
	}

	promo, err := s.fromRequest(&PromoCode{IsActive: true}, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, promo); err != nil {
		return nil, fmt.Errorf("failed to create promo code: %w", err)
	}
	return promo, nil
}

func (s *service) UpdateCode(ctx context.Context, code string, req PromoRequest) (*PromoCode, error) {
	existing, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up promo code: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("promo code", code)
	}

	promo, err := s.fromRequest(existing, req)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, promo); err != nil {
		return nil, fmt.Errorf("failed to update promo code: %w", err)
	}
	return promo, nil
}

func (s *service) DeactivateCode(ctx context.Context, code string) error {
	affected, err := s.repo.Deactivate(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to deactivate promo code: %w", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("promo code", code)
	}
	return nil
}

func (s *service) fromRequest(promo *PromoCode, req PromoRequest) (*PromoCode, error) {
	from, err := parsePromoDate(req.ValidFrom, "valid_from", s.workday)
	if err != nil {
		return nil, err
	}
	until, err := parsePromoDate(req.ValidUntil, "valid_until", s.workday)
	if err != nil {
		return nil, err
	}

	promo.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	promo.Description = req.Description
	promo.DiscountType = req.DiscountType
	promo.DiscountValue = req.DiscountValue
	promo.MinAmount = req.MinAmount
	promo.MaxDiscount = req.MaxDiscount
	promo.UsageLimit = req.UsageLimit
	promo.ValidFrom = from
	promo.ValidUntil = until
	promo.ApplicableSports = req.ApplicableSports
	return promo, nil
}

func parsePromoDate(value *string, field string, workday *schedule.Workday) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := workday.ParseDate(*value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be in YYYY-MM-DD format")
	}
	return &parsed, nil
}
