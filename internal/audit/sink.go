package audit

import (
	"context"

	"courtside/internal/bookings"
	"courtside/pkg/logger"
)

// Sink adapts the producer to the booking service's audit hook.
// Publishing is fire and forget: failures are logged and never propagate
// into the booking path.
type Sink struct {
	producer Producer
	log      *logger.Logger
}

func NewSink(producer Producer) *Sink {
	return &Sink{producer: producer, log: logger.GetDefault()}
}

func (s *Sink) BookingCreated(ctx context.Context, booking *bookings.Booking) {
	event := NewEvent(EventBookingCreated)
	event.BookingID = booking.ID
	event.CourtID = booking.CourtID
	event.WorkdayDate = booking.WorkdayDate
	event.Slots = booking.Slots
	event.ToStatus = string(booking.Status)
	event.TotalAmount = booking.TotalAmount
	event.PromoCode = booking.PromoCode

	s.publish(ctx, event)
}

func (s *Sink) BookingTransition(ctx context.Context, booking *bookings.Booking, from bookings.Status) {
	eventType := EventBookingCancelled
	if booking.Status == bookings.StatusConfirmed {
		eventType = EventBookingConfirmed
	}

	event := NewEvent(eventType)
	event.BookingID = booking.ID
	event.CourtID = booking.CourtID
	event.WorkdayDate = booking.WorkdayDate
	event.FromStatus = string(from)
	event.ToStatus = string(booking.Status)
	event.TotalAmount = booking.TotalAmount

	s.publish(ctx, event)
}

func (s *Sink) publish(ctx context.Context, event *Event) {
	if err := s.producer.Publish(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "audit event publish failed", err, map[string]interface{}{
			"event_type": event.Type,
			"booking_id": event.BookingID,
		})
	}
}
