package blocks

import (
	"time"

	"github.com/google/uuid"
)

// BlockedSlot takes a single slot out of circulation for one court and
// workday, by administrator action.
type BlockedSlot struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CourtID     string    `gorm:"type:varchar(50);index:idx_blocked_court_day;not null" json:"court_id"`
	WorkdayDate string    `gorm:"type:varchar(10);index:idx_blocked_court_day;not null" json:"workday_date"`
	SlotLabel   string    `gorm:"type:varchar(5);not null" json:"slot_label"`
	Reason      string    `gorm:"type:varchar(255)" json:"reason"`
	BlockedBy   string    `gorm:"type:varchar(100)" json:"blocked_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the table name for BlockedSlot
func (BlockedSlot) TableName() string {
	return "blocked_slots"
}

// BlockRequest represents an admin block request
type BlockRequest struct {
	CourtID   string `json:"court_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	SlotLabel string `json:"slot_label" binding:"required"`
	Reason    string `json:"reason"`
}

// UnblockRequest represents an admin unblock request
type UnblockRequest struct {
	CourtID   string `json:"court_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	SlotLabel string `json:"slot_label" binding:"required"`
}
