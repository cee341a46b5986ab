package pricing

import (
	"context"
	"fmt"
	"time"

	"courtside/internal/schedule"
	"courtside/internal/shared/apperrors"
	"courtside/pkg/cache"
	"courtside/pkg/logger"
)

const ruleCachePrefix = "courtside:pricing:rule:"

// Service interface defines the contract for pricing logic
type Service interface {
	// QuoteSlots prices the given slots for a court and workday. It never
	// returns an error: any failure degrades to the static fallback table.
	QuoteSlots(ctx context.Context, courtID, workday string, slots []string) (perSlot []int64, total int64)

	// Admin rule management
	ListRules(ctx context.Context) ([]PricingRule, error)
	UpsertRule(ctx context.Context, req RuleRequest) (*PricingRule, error)
	DeactivateRule(ctx context.Context, courtID string) error
}

type service struct {
	repo       Repository
	workday    *schedule.Workday
	cache      cache.Service
	pricingTTL time.Duration
	log        *logger.Logger
}

func NewService(repo Repository, workday *schedule.Workday, cacheSvc cache.Service, pricingTTL time.Duration) Service {
	return &service{
		repo:       repo,
		workday:    workday,
		cache:      cacheSvc,
		pricingTTL: pricingTTL,
		log:        logger.GetDefault(),
	}
}

func (s *service) QuoteSlots(ctx context.Context, courtID, workday string, slots []string) ([]int64, int64) {
	rule, weekday, err := s.resolve(ctx, courtID, workday)
	if err != nil || rule == nil {
		if err != nil {
			s.log.LogPricingFallback(ctx, courtID, err)
		}
		perSlot := make([]int64, len(slots))
		fallback := FallbackPerSlot(courtID)
		for i := range perSlot {
			perSlot[i] = fallback
		}
		return perSlot, Sum(perSlot)
	}

	perSlot := PriceSlots(rule, weekday, slots)
	return perSlot, Sum(perSlot)
}

// resolve returns the applicable rule (nil when the fallback table should
// be used) and the workday's day of week.
func (s *service) resolve(ctx context.Context, courtID, workday string) (*PricingRule, time.Weekday, error) {
	date, err := s.workday.ParseDate(workday)
	if err != nil {
		return nil, 0, err
	}

	rule, err := s.fetchRule(ctx, courtID)
	if err != nil {
		return nil, date.Weekday(), err
	}
	if rule == nil || !rule.CoversDate(date) {
		return nil, date.Weekday(), nil
	}
	return rule, date.Weekday(), nil
}

func (s *service) fetchRule(ctx context.Context, courtID string) (*PricingRule, error) {
	if s.cache == nil {
		return s.repo.GetActiveByCourt(ctx, courtID)
	}

	var rule PricingRule
	err := s.cache.Get(ctx, ruleCachePrefix+courtID, &rule)
	if err == nil {
		return &rule, nil
	}

	fetched, err := s.repo.GetActiveByCourt(ctx, courtID)
	if err != nil || fetched == nil {
		return fetched, err
	}

	// Best effort: a cold cache must not fail pricing
	_ = s.cache.Set(ctx, ruleCachePrefix+courtID, fetched, s.pricingTTL)
	return fetched, nil
}

func (s *service) ListRules(ctx context.Context) ([]PricingRule, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) UpsertRule(ctx context.Context, req RuleRequest) (*PricingRule, error) {
	from, err := parseRuleDate(req.EffectiveFrom, "effective_from", s.workday)
	if err != nil {
		return nil, err
	}
	until, err := parseRuleDate(req.EffectiveUntil, "effective_until", s.workday)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetActiveByCourt(ctx, req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing rule: %w", err)
	}

	rule := existing
	if rule == nil {
		rule = &PricingRule{CourtID: req.CourtID, IsActive: true}
	}
	rule.CourtName = req.CourtName
	rule.Sport = req.Sport
	rule.BasePrice = req.BasePrice
	rule.PeakPrice = req.PeakPrice
	rule.OffPeakPrice = req.OffPeakPrice
	rule.WeekendPrice = req.WeekendPrice
	rule.EffectiveFrom = from
	rule.EffectiveUntil = until

	if existing == nil {
		err = s.repo.Create(ctx, rule)
	} else {
		err = s.repo.Update(ctx, rule)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save pricing rule: %w", err)
	}

	s.invalidate(ctx, req.CourtID)
	return rule, nil
}

func (s *service) DeactivateRule(ctx context.Context, courtID string) error {
	affected, err := s.repo.Deactivate(ctx, courtID)
	if err != nil {
		return fmt.Errorf("failed to deactivate pricing rule: %w", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("pricing rule", courtID)
	}

	s.invalidate(ctx, courtID)
	return nil
}

func (s *service) invalidate(ctx context.Context, courtID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, ruleCachePrefix+courtID)
}

func parseRuleDate(value *string, field string, workday *schedule.Workday) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := workday.ParseDate(*value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be in YYYY-MM-DD format")
	}
	return &parsed, nil
}
