package bookings

// QuoteResponse is a priced but unreserved booking.
type QuoteResponse struct {
	CourtID       string   `json:"court_id"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	DurationHours float64  `json:"duration_hours"`
	Slots         []string `json:"slots"`
	PerSlot       []int64  `json:"per_slot_prices"`
	Amount        int64    `json:"amount"`
	Discount      int64    `json:"discount"`
	TotalAmount   int64    `json:"total_amount"`
	PromoApplied  bool     `json:"promo_applied"`
	PromoReason   string   `json:"promo_reason,omitempty"`
}

// AvailabilityResponse lists a workday's slot grid split into open and
// taken labels, both in workday order. The Requested/Conflicts/Available
// fields are filled only when the request named a slot range.
type AvailabilityResponse struct {
	CourtID     string   `json:"court_id"`
	Date        string   `json:"date"`
	Open        []string `json:"available_slots"`
	Unavailable []string `json:"unavailable_slots"`
	Requested   []string `json:"requested_slots,omitempty"`
	Conflicts   []string `json:"conflicts,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

// BookingListResponse is a paginated admin listing.
type BookingListResponse struct {
	Bookings   []Booking `json:"bookings"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}
