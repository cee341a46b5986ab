package courts

import (
	"time"
)

// Court is a bookable resource. Courts sharing a non-empty SharedGroup
// occupy the same physical space and cannot hold overlapping bookings.
type Court struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Sport       string    `gorm:"type:varchar(50);index;not null" json:"sport"`
	SharedGroup string    `gorm:"type:varchar(50);index" json:"shared_group,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name for Court
func (Court) TableName() string {
	return "courts"
}

// ConflictKey is the identity under which this court's slot claims are
// registered: the shared group when present, otherwise the court itself.
func (c *Court) ConflictKey() string {
	if c.SharedGroup != "" {
		return c.SharedGroup
	}
	return c.ID
}

// DefaultCourts seeds the catalog on an empty install. cricket-2 and
// futsal-1 are the same physical surface.
func DefaultCourts() []Court {
	return []Court{
		{ID: "padel-1", Name: "Court 1: Purple Mondo", Sport: "padel", IsActive: true},
		{ID: "padel-2", Name: "Court 2: Teracotta Court", Sport: "padel", IsActive: true},
		{ID: "cricket-1", Name: "Court 1: 110x50ft", Sport: "cricket", IsActive: true},
		{ID: "cricket-2", Name: "Court 2: 130x60ft Multi", Sport: "cricket", SharedGroup: "multi-130x60", IsActive: true},
		{ID: "futsal-1", Name: "Court 1: 130x60ft Multi", Sport: "futsal", SharedGroup: "multi-130x60", IsActive: true},
		{ID: "pickleball-1", Name: "Court 1: Professional Setup", Sport: "pickleball", IsActive: true},
	}
}
