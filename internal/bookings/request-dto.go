package bookings

// QuoteRequest asks what a booking would cost without holding anything.
type QuoteRequest struct {
	CourtID       string  `json:"court_id" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	StartTime     string  `json:"start_time" binding:"required"`
	DurationHours float64 `json:"duration_hours" binding:"required,gt=0"`
	PromoCode     string  `json:"promo_code"`
}

// AvailabilityRequest asks which slots of a court's workday are open.
// When a start time and duration are given, the response additionally
// reports whether that specific range is free and which of its slots
// conflict.
type AvailabilityRequest struct {
	CourtID       string  `json:"court_id" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	StartTime     string  `json:"start_time"`
	DurationHours float64 `json:"duration_hours" binding:"omitempty,gt=0"`
}

// CreateBookingRequest reserves slots for a customer.
type CreateBookingRequest struct {
	CourtID       string  `json:"court_id" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	StartTime     string  `json:"start_time" binding:"required"`
	DurationHours float64 `json:"duration_hours" binding:"required,gt=0"`
	CustomerName  string  `json:"customer_name" binding:"required,min=2,max=100"`
	CustomerPhone string  `json:"customer_phone" binding:"required,pk_phone"`
	CustomerEmail string  `json:"customer_email" binding:"omitempty,email"`
	PromoCode     string  `json:"promo_code"`
	Notes         string  `json:"notes" binding:"max=500"`
}

// UpdateBookingRequest is the admin override for non-key fields on an
// existing booking. Slots and status are immutable here; status moves only
// through the lifecycle endpoints. TotalAmount is a trusted override: it
// does not re-validate availability or re-run pricing.
type UpdateBookingRequest struct {
	CustomerName  *string `json:"customer_name" binding:"omitempty,min=2,max=100"`
	CustomerPhone *string `json:"customer_phone" binding:"omitempty,pk_phone"`
	CustomerEmail *string `json:"customer_email" binding:"omitempty,email"`
	Notes         *string `json:"notes" binding:"omitempty,max=500"`
	TotalAmount   *int64  `json:"total_amount" binding:"omitempty,gte=0"`
}

// ListQuery filters the admin booking list.
type ListQuery struct {
	Date    string `form:"date"`
	CourtID string `form:"court_id"`
	Status  string `form:"status"`
	Phone   string `form:"phone"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
}
