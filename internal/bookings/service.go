package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courtside/internal/availability"
	"courtside/internal/courts"
	"courtside/internal/pricing"
	"courtside/internal/promos"
	"courtside/internal/schedule"
	"courtside/internal/shared/apperrors"
	"courtside/pkg/logger"

	"gorm.io/gorm"
)

// AuditSink receives booking lifecycle events. Implementations must be
// fire-and-forget: a sink failure never fails the booking.
type AuditSink interface {
	BookingCreated(ctx context.Context, booking *Booking)
	BookingTransition(ctx context.Context, booking *Booking, from Status)
}

// Service interface defines the contract for booking business logic
type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
	Availability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResponse, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, id string) (*Booking, error)
	ListBookings(ctx context.Context, query ListQuery) (*BookingListResponse, error)

	// Lifecycle transitions
	ConfirmBooking(ctx context.Context, id string) (*Booking, error)
	DeclineBooking(ctx context.Context, id string) (*Booking, error)
	CancelBooking(ctx context.Context, id string) (*Booking, error)

	// Admin override of customer details
	UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*Booking, error)
}

type service struct {
	repo         Repository
	courts       courts.Service
	availability availability.Service
	pricing      pricing.Service
	promos       promos.Service
	workday      *schedule.Workday
	audit        AuditSink
	log          *logger.Logger
}

// NewService creates a new booking service instance
func NewService(repo Repository, courtSvc courts.Service, availabilitySvc availability.Service,
	pricingSvc pricing.Service, promoSvc promos.Service, workday *schedule.Workday, audit AuditSink) Service {
	return &service{
		repo:         repo,
		courts:       courtSvc,
		availability: availabilitySvc,
		pricing:      pricingSvc,
		promos:       promoSvc,
		workday:      workday,
		audit:        audit,
		log:          logger.GetDefault(),
	}
}

// Quote prices a prospective booking without reserving anything.
func (s *service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	court, slots, err := s.resolveRequest(ctx, req.CourtID, req.Date, req.StartTime, req.DurationHours)
	if err != nil {
		return nil, err
	}

	perSlot, amount := s.pricing.QuoteSlots(ctx, court.ID, req.Date, slots)

	resp := &QuoteResponse{
		CourtID:       court.ID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       schedule.EndTime(slots),
		DurationHours: req.DurationHours,
		Slots:         slots,
		PerSlot:       perSlot,
		Amount:        amount,
		TotalAmount:   amount,
	}

	if req.PromoCode != "" {
		validation, err := s.promos.Validate(ctx, req.PromoCode, amount, court.Sport, s.workday.Today())
		if err != nil {
			return nil, err
		}
		if validation.Valid {
			resp.Discount = validation.Discount
			resp.TotalAmount = validation.Final
			resp.PromoApplied = true
		} else {
			resp.PromoReason = validation.Reason
		}
	}

	return resp, nil
}

// Availability splits the court's workday grid into open and taken slots
// and, when a range was named, checks that range. The answer is advisory:
// the commit-time re-check inside create is authoritative.
func (s *service) Availability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResponse, error) {
	unavailable, err := s.availability.UnavailableSlots(ctx, req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(unavailable))
	for _, l := range unavailable {
		taken[l] = struct{}{}
	}

	var open []string
	for _, l := range s.workday.Grid() {
		if _, hit := taken[l]; !hit {
			open = append(open, l)
		}
	}

	resp := &AvailabilityResponse{
		CourtID:     req.CourtID,
		Date:        req.Date,
		Open:        open,
		Unavailable: unavailable,
	}

	if req.StartTime != "" {
		requested, err := schedule.ExpandSlots(req.StartTime, req.DurationHours)
		if err != nil {
			return nil, err
		}

		conflicts := []string{}
		for _, l := range requested {
			if _, hit := taken[l]; hit {
				conflicts = append(conflicts, l)
			}
		}

		available := len(conflicts) == 0
		resp.Requested = requested
		resp.Conflicts = conflicts
		resp.Available = &available
	}

	return resp, nil
}

// CreateBooking reserves the slots. The advisory availability check keeps
// the common path cheap; the locked re-check plus the unique claim index
// inside the transaction are what actually guarantee no double booking.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	court, slots, err := s.resolveRequest(ctx, req.CourtID, req.Date, req.StartTime, req.DurationHours)
	if err != nil {
		return nil, err
	}

	startsAt, err := s.workday.Normalize(req.Date, req.StartTime)
	if err != nil {
		return nil, err
	}

	phone, err := NormalizePhone(req.CustomerPhone)
	if err != nil {
		return nil, err
	}

	courtIDs, conflictKey, err := s.courts.ConflictScope(ctx, court.ID)
	if err != nil {
		return nil, err
	}

	conflicts, err := s.availability.Check(ctx, court.ID, req.Date, slots)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, apperrors.NewConflictError(conflicts)
	}

	_, amount := s.pricing.QuoteSlots(ctx, court.ID, req.Date, slots)

	booking := &Booking{
		ID:            NewBookingID(req.Date),
		CourtID:       court.ID,
		CourtName:     court.Name,
		Sport:         court.Sport,
		WorkdayDate:   req.Date,
		StartTime:     req.StartTime,
		EndTime:       schedule.EndTime(slots),
		StartsAt:      startsAt,
		DurationHours: req.DurationHours,
		Slots:         slots,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: phone,
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Amount:        amount,
		TotalAmount:   amount,
		Status:        StatusPendingPayment,
		Notes:         req.Notes,
	}

	promoApplied := false
	if req.PromoCode != "" {
		validation, err := s.promos.Validate(ctx, req.PromoCode, amount, court.Sport, s.workday.Today())
		if err != nil {
			return nil, err
		}
		if !validation.Valid {
			return nil, apperrors.NewValidationError("promo_code", validation.Reason)
		}
		booking.PromoCode = strings.ToUpper(strings.TrimSpace(req.PromoCode))
		booking.Discount = validation.Discount
		booking.TotalAmount = validation.Final
		promoApplied = true
	}

	claims := make([]SlotClaim, 0, len(slots))
	for _, label := range slots {
		claims = append(claims, SlotClaim{
			BookingID:   booking.ID,
			CourtID:     court.ID,
			ConflictKey: conflictKey,
			WorkdayDate: req.Date,
			SlotLabel:   label,
		})
	}

	check := func(tx *gorm.DB) error {
		locked, err := s.availability.CheckLocked(ctx, tx, conflictKey, courtIDs, req.Date, slots)
		if err != nil {
			return err
		}
		if len(locked) > 0 {
			s.log.LogBookingConflict(ctx, court.ID, req.Date, locked)
			return apperrors.NewConflictError(locked)
		}
		return nil
	}

	var apply func(tx *gorm.DB) error
	if promoApplied {
		apply = func(tx *gorm.DB) error {
			return s.promos.Apply(tx, booking.PromoCode)
		}
	}

	if err := s.repo.CreateWithClaims(ctx, booking, claims, check, apply); err != nil {
		return nil, err
	}

	s.log.LogBookingCreated(ctx, booking.ID, court.ID, req.Date, len(slots))
	if s.audit != nil {
		s.audit.BookingCreated(ctx, booking)
	}
	if promoApplied {
		s.log.LogPromoApplied(ctx, booking.PromoCode, booking.ID, booking.Discount)
	}

	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListBookings(ctx context.Context, query ListQuery) (*BookingListResponse, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}
	if query.Status != "" && !ValidStatus(query.Status) {
		return nil, apperrors.NewValidationError("status", "unknown booking status")
	}

	bookings, totalCount, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return &BookingListResponse{
		Bookings:   bookings,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: CalculateTotalPages(totalCount, query.Limit),
	}, nil
}

// ConfirmBooking moves a pending booking to confirmed. Slots stay claimed.
func (s *service) ConfirmBooking(ctx context.Context, id string) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanConfirm() {
		return nil, apperrors.NewInvalidTransitionError(string(booking.Status), "confirm")
	}

	from := booking.Status
	booking.UpdateStatusStamp(StatusConfirmed, time.Now().UTC())
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}

	s.finishTransition(ctx, booking, from)
	return booking, nil
}

// DeclineBooking is the admin rejection of a pending booking; the slots
// are released immediately.
func (s *service) DeclineBooking(ctx context.Context, id string) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanDecline() {
		return nil, apperrors.NewInvalidTransitionError(string(booking.Status), "decline")
	}

	return s.cancel(ctx, booking)
}

// CancelBooking releases the booking's slots. Cancelling a booking that is
// already cancelled succeeds without changing anything.
func (s *service) CancelBooking(ctx context.Context, id string) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == StatusCancelled {
		return booking, nil
	}
	if !booking.Status.CanCancel() {
		return nil, apperrors.NewInvalidTransitionError(string(booking.Status), "cancel")
	}

	return s.cancel(ctx, booking)
}

func (s *service) cancel(ctx context.Context, booking *Booking) (*Booking, error) {
	from := booking.Status
	booking.UpdateStatusStamp(StatusCancelled, time.Now().UTC())
	if err := s.repo.SaveReleasingClaims(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.finishTransition(ctx, booking, from)
	return booking, nil
}

func (s *service) UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		booking.CustomerName = strings.TrimSpace(*req.CustomerName)
	}
	if req.CustomerPhone != nil {
		phone, err := NormalizePhone(*req.CustomerPhone)
		if err != nil {
			return nil, err
		}
		booking.CustomerPhone = phone
	}
	if req.CustomerEmail != nil {
		booking.CustomerEmail = strings.TrimSpace(*req.CustomerEmail)
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}
	if req.TotalAmount != nil {
		booking.TotalAmount = *req.TotalAmount
	}

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// resolveRequest validates the shared (court, date, start, duration) tuple
// and expands it into slot labels.
func (s *service) resolveRequest(ctx context.Context, courtID, date, startTime string, durationHours float64) (*courts.Court, []string, error) {
	if _, err := s.workday.ParseDate(date); err != nil {
		return nil, nil, err
	}

	slots, err := schedule.ExpandSlots(startTime, durationHours)
	if err != nil {
		return nil, nil, err
	}

	court, err := s.courts.GetCourt(ctx, courtID)
	if err != nil {
		return nil, nil, err
	}
	if !court.IsActive {
		return nil, nil, apperrors.NewValidationError("court_id", "court is not accepting bookings")
	}

	return court, slots, nil
}

func (s *service) finishTransition(ctx context.Context, booking *Booking, from Status) {
	s.log.LogBookingTransition(ctx, booking.ID, string(from), string(booking.Status))
	if s.audit != nil {
		s.audit.BookingTransition(ctx, booking, from)
	}
}
