package promos

import (
	"time"
)

// Discount types
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed_amount"
)

// PromoCode is an administrator-managed promotional discount.
type PromoCode struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Code             string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Description      string     `gorm:"type:varchar(255)" json:"description"`
	DiscountType     string     `gorm:"type:varchar(20);not null;default:'percentage'" json:"discount_type"`
	DiscountValue    int64      `gorm:"not null" json:"discount_value"`
	MinAmount        *int64     `json:"min_amount,omitempty"`
	MaxDiscount      *int64     `json:"max_discount,omitempty"`
	UsageLimit       *int       `json:"usage_limit,omitempty"`
	UsageCount       int        `gorm:"default:0" json:"usage_count"`
	ValidFrom        *time.Time `gorm:"type:date" json:"valid_from,omitempty"`
	ValidUntil       *time.Time `gorm:"type:date" json:"valid_until,omitempty"`
	ApplicableSports []string   `gorm:"serializer:json;type:jsonb" json:"applicable_sports,omitempty"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName sets the table name for PromoCode
func (PromoCode) TableName() string {
	return "promo_codes"
}

// AppliesTo reports whether the code's sport allow-list admits the sport.
// An empty list admits everything.
func (p *PromoCode) AppliesTo(sport string) bool {
	if len(p.ApplicableSports) == 0 {
		return true
	}
	for _, s := range p.ApplicableSports {
		if s == sport {
			return true
		}
	}
	return false
}

// Validation describes the outcome of a promo check against an order.
type Validation struct {
	Valid    bool       `json:"valid"`
	Reason   string     `json:"reason,omitempty"`
	Promo    *PromoCode `json:"-"`
	Discount int64      `json:"discount"`
	Final    int64      `json:"final_amount"`
}

// PromoRequest represents an admin create/update request
type PromoRequest struct {
	Code             string   `json:"code" binding:"required"`
	Description      string   `json:"description"`
	DiscountType     string   `json:"discount_type" binding:"required,oneof=percentage fixed_amount"`
	DiscountValue    int64    `json:"discount_value" binding:"required,gt=0"`
	MinAmount        *int64   `json:"min_amount"`
	MaxDiscount      *int64   `json:"max_discount"`
	UsageLimit       *int     `json:"usage_limit"`
	ValidFrom        *string  `json:"valid_from"`
	ValidUntil       *string  `json:"valid_until"`
	ApplicableSports []string `json:"applicable_sports"`
	IsActive         *bool    `json:"is_active"`
}
