package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted on the audit topic
const (
	EventBookingCreated    = "booking.created"
	EventBookingConfirmed  = "booking.confirmed"
	EventBookingCancelled  = "booking.cancelled"
)

// Event is one booking lifecycle record. Events are keyed by booking id
// so a booking's history lands on one partition in order.
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	CourtID     string    `json:"court_id"`
	WorkdayDate string    `json:"workday_date"`
	Slots       []string  `json:"slots,omitempty"`
	FromStatus  string    `json:"from_status,omitempty"`
	ToStatus    string    `json:"to_status"`
	TotalAmount int64     `json:"total_amount"`
	PromoCode   string    `json:"promo_code,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewEvent stamps identity and time onto an audit event.
func NewEvent(eventType string) *Event {
	return &Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
}

// ToJSON serializes the event for the wire.
func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey returns the Kafka partition key.
func (e *Event) PartitionKey() string {
	return e.BookingID
}
