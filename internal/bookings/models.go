package bookings

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking is a reservation of consecutive slots on one court for one
// workday. Slot occupancy lives in the booking_slots claim rows; the
// Slots column is a denormalized copy kept for display and auditing.
// StartsAt is the absolute instant the first slot begins: start times
// before the workday boundary fall on the next calendar date.
type Booking struct {
	ID              string     `gorm:"type:varchar(20);primaryKey" json:"id"`
	CourtID         string     `gorm:"type:varchar(50);not null;index" json:"court_id"`
	CourtName       string     `gorm:"type:varchar(100)" json:"court_name"`
	Sport           string     `gorm:"type:varchar(50)" json:"sport"`
	WorkdayDate     string     `gorm:"type:varchar(10);not null;index" json:"date"`
	StartTime       string     `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime         string     `gorm:"type:varchar(5);not null" json:"end_time"`
	StartsAt        time.Time  `gorm:"index" json:"starts_at"`
	DurationHours   float64    `gorm:"not null" json:"duration_hours"`
	Slots           []string   `gorm:"serializer:json;type:jsonb;not null" json:"slots"`
	CustomerName    string     `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerPhone   string     `gorm:"type:varchar(20);not null;index" json:"customer_phone"`
	CustomerEmail   string     `gorm:"type:varchar(255)" json:"customer_email,omitempty"`
	Amount          int64      `gorm:"not null" json:"amount"`
	Discount        int64      `gorm:"default:0" json:"discount"`
	TotalAmount     int64      `gorm:"not null" json:"total_amount"`
	PromoCode       string     `gorm:"type:varchar(50)" json:"promo_code,omitempty"`
	Status          Status     `gorm:"type:varchar(20);not null;default:'pending_payment';index" json:"status"`
	PaymentVerified bool       `gorm:"default:false" json:"payment_verified"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// SlotClaim is one occupied slot of a workday. The unique index over
// (conflict_key, workday_date, slot_label) is what makes two concurrent
// bookings of the same slot impossible: the second insert fails. For
// courts in a shared group the conflict key is the group name, so claims
// contend across every sport the surface hosts.
type SlotClaim struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BookingID   string    `gorm:"type:varchar(20);not null;index" json:"booking_id"`
	CourtID     string    `gorm:"type:varchar(50);not null" json:"court_id"`
	ConflictKey string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_slot_claim,priority:1" json:"conflict_key"`
	WorkdayDate string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_slot_claim,priority:2" json:"workday_date"`
	SlotLabel   string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_slot_claim,priority:3" json:"slot_label"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the table name for SlotClaim
func (SlotClaim) TableName() string {
	return "booking_slots"
}

// NewBookingID mints a reference like CB20250601A1B2C3D4: a fixed prefix,
// the workday date and a short random suffix customers can read back over
// the phone.
func NewBookingID(workdayDate string) string {
	datePart := strings.ReplaceAll(workdayDate, "-", "")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("CB%s%s", datePart, suffix)
}
