package bookings

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"courtside/internal/shared/apperrors"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, query ListQuery) ([]Booking, int64, error)
	Update(ctx context.Context, booking *Booking) error

	// CreateWithClaims inserts the booking and its slot claims atomically.
	// check runs first with the transaction handle for the authoritative
	// conflict re-check; apply runs last for side effects that must commit
	// or roll back with the booking (promo usage).
	CreateWithClaims(ctx context.Context, booking *Booking, claims []SlotClaim,
		check func(tx *gorm.DB) error, apply func(tx *gorm.DB) error) error

	// SaveReleasingClaims persists a status change and deletes the
	// booking's slot claims in the same transaction, freeing the slots.
	SaveReleasingClaims(ctx context.Context, booking *Booking) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.ToUpper(id)).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("booking", id)
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) List(ctx context.Context, query ListQuery) ([]Booking, int64, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}

	base := r.applyFilters(r.db.WithContext(ctx).Model(&Booking{}), query)

	var totalCount int64
	if err := base.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var bookings []Booking
	err := base.
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

func (r *repository) Update(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

// errClaimRace marks a unique-index hit on the claims insert so the
// caller can report which slots were contended.
var errClaimRace = errors.New("slot claims already taken")

func (r *repository) CreateWithClaims(ctx context.Context, booking *Booking, claims []SlotClaim,
	check func(tx *gorm.DB) error, apply func(tx *gorm.DB) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := check(tx); err != nil {
			return err
		}

		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		if err := tx.Create(&claims).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errClaimRace
			}
			return err
		}

		if apply != nil {
			return apply(tx)
		}
		return nil
	})
	if errors.Is(err, errClaimRace) {
		// Two transactions raced past the advisory check; the unique claim
		// index caught the loser. The failed insert aborted the transaction,
		// so the contended labels are read back outside it.
		return apperrors.NewConflictError(r.contendedLabels(ctx, booking, claims))
	}
	return err
}

// contendedLabels reports which of the booking's slots are already
// claimed. Falls back to the full slot list if the read fails.
func (r *repository) contendedLabels(ctx context.Context, booking *Booking, claims []SlotClaim) []string {
	if len(claims) == 0 {
		return booking.Slots
	}

	var labels []string
	err := r.db.WithContext(ctx).
		Table("booking_slots").
		Where("conflict_key = ? AND workday_date = ? AND slot_label IN ?",
			claims[0].ConflictKey, claims[0].WorkdayDate, booking.Slots).
		Pluck("slot_label", &labels).Error
	if err != nil || len(labels) == 0 {
		return booking.Slots
	}
	return labels
}

func (r *repository) SaveReleasingClaims(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(booking).Error; err != nil {
			return err
		}
		return tx.Where("booking_id = ?", booking.ID).Delete(&SlotClaim{}).Error
	})
}

func (r *repository) applyFilters(query *gorm.DB, filters ListQuery) *gorm.DB {
	if filters.Date != "" {
		query = query.Where("workday_date = ?", filters.Date)
	}
	if filters.CourtID != "" {
		query = query.Where("court_id = ?", filters.CourtID)
	}
	if filters.Status != "" && ValidStatus(filters.Status) {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Phone != "" {
		query = query.Where("customer_phone = ?", filters.Phone)
	}
	return query
}

// UpdateStatusStamp mutates the booking's status in memory, stamping the
// matching timestamp column.
func (b *Booking) UpdateStatusStamp(status Status, now time.Time) {
	b.Status = status
	switch status {
	case StatusConfirmed:
		b.ConfirmedAt = &now
		b.PaymentVerified = true
	case StatusCancelled:
		b.CancelledAt = &now
	}
}

// CalculateTotalPages converts a row count into page count.
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}
