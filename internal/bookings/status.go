package bookings

// Status is a booking's lifecycle state.
type Status string

const (
	// StatusPendingPayment holds the slots while payment is collected.
	// Pending bookings still occupy their slot claims.
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusCancelled      Status = "cancelled"
)

// IsTerminal reports whether the booking no longer holds its slots.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}

// CanConfirm reports whether a confirm transition is allowed.
func (s Status) CanConfirm() bool {
	return s == StatusPendingPayment
}

// CanDecline reports whether a decline transition is allowed. Decline is
// the admin rejection of a booking that has not been cancelled yet; it
// releases the slots exactly like a cancel.
func (s Status) CanDecline() bool {
	return s == StatusPendingPayment || s == StatusConfirmed
}

// CanCancel reports whether a cancel transition is allowed. Cancelling an
// already-cancelled booking is permitted and is a no-op.
func (s Status) CanCancel() bool {
	return s == StatusPendingPayment || s == StatusConfirmed || s == StatusCancelled
}

// ValidStatus reports whether a string names a known lifecycle state.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPendingPayment, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}
