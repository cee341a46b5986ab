package availability

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository reads the two sources of slot contention: committed booking
// claims and administrator blocks. Claims live in booking_slots, written by
// the booking transaction; this package only ever reads them.
type Repository interface {
	ClaimedLabels(ctx context.Context, conflictKey, workdayDate string) ([]string, error)
	BlockedLabels(ctx context.Context, courtIDs []string, workdayDate string) ([]string, error)

	// ClaimedLabelsLocked re-reads claims inside the caller's transaction with
	// row locks held, for the authoritative commit-time conflict check.
	ClaimedLabelsLocked(tx *gorm.DB, conflictKey, workdayDate string, labels []string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ClaimedLabels(ctx context.Context, conflictKey, workdayDate string) ([]string, error) {
	var labels []string
	err := r.db.WithContext(ctx).
		Table("booking_slots").
		Where("conflict_key = ? AND workday_date = ?", conflictKey, workdayDate).
		Pluck("slot_label", &labels).Error
	return labels, err
}

func (r *repository) BlockedLabels(ctx context.Context, courtIDs []string, workdayDate string) ([]string, error) {
	var labels []string
	err := r.db.WithContext(ctx).
		Table("blocked_slots").
		Where("court_id IN ? AND workday_date = ?", courtIDs, workdayDate).
		Pluck("slot_label", &labels).Error
	return labels, err
}

func (r *repository) ClaimedLabelsLocked(tx *gorm.DB, conflictKey, workdayDate string, labels []string) ([]string, error) {
	var claimed []string
	err := tx.
		Table("booking_slots").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("conflict_key = ? AND workday_date = ? AND slot_label IN ?", conflictKey, workdayDate, labels).
		Pluck("slot_label", &claimed).Error
	return claimed, err
}
