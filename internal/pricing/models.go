package pricing

import (
	"time"
)

// PricingRule holds per-court tier prices with an optional validity window.
// Prices are integer currency units per 30-minute slot.
type PricingRule struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	CourtID        string     `gorm:"type:varchar(50);index;not null" json:"court_id"`
	CourtName      string     `gorm:"type:varchar(100)" json:"court_name"`
	Sport          string     `gorm:"type:varchar(50)" json:"sport"`
	BasePrice      int64      `gorm:"not null" json:"base_price"`
	PeakPrice      *int64     `json:"peak_price,omitempty"`
	OffPeakPrice   *int64     `json:"off_peak_price,omitempty"`
	WeekendPrice   *int64     `json:"weekend_price,omitempty"`
	IsActive       bool       `gorm:"default:true;index" json:"is_active"`
	EffectiveFrom  *time.Time `gorm:"type:date" json:"effective_from,omitempty"`
	EffectiveUntil *time.Time `gorm:"type:date" json:"effective_until,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName sets the table name for PricingRule
func (PricingRule) TableName() string {
	return "court_pricing"
}

// CoversDate reports whether the rule's validity window contains the
// given workday date.
func (p *PricingRule) CoversDate(workday time.Time) bool {
	if p.EffectiveFrom != nil && workday.Before(*p.EffectiveFrom) {
		return false
	}
	if p.EffectiveUntil != nil && workday.After(*p.EffectiveUntil) {
		return false
	}
	return true
}

// RuleRequest represents an admin create/update request
type RuleRequest struct {
	CourtID        string  `json:"court_id" binding:"required"`
	CourtName      string  `json:"court_name"`
	Sport          string  `json:"sport"`
	BasePrice      int64   `json:"base_price" binding:"required,gt=0"`
	PeakPrice      *int64  `json:"peak_price"`
	OffPeakPrice   *int64  `json:"off_peak_price"`
	WeekendPrice   *int64  `json:"weekend_price"`
	EffectiveFrom  *string `json:"effective_from"`
	EffectiveUntil *string `json:"effective_until"`
}
