package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the database constraints the booking path relies
// on for concurrency control. AutoMigrate declares the unique claim index
// from struct tags; the statements here are kept explicit and idempotent
// so the guarantee survives schema drift.
func MigrateConstraints(db *gorm.DB) error {
	// One claim per (conflict key, workday, slot): the second of two racing
	// booking transactions fails here.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_slot_claim
		ON booking_slots (conflict_key, workday_date, slot_label);
	`).Error
	if err != nil {
		return err
	}

	// Availability reads scan one conflict key and one workday at a time
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_slots_booking_id
		ON booking_slots (booking_id);
	`).Error
	if err != nil {
		return err
	}

	// Admin listings filter by workday and court
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_workday_court
		ON bookings (workday_date, court_id);
	`).Error
	if err != nil {
		return err
	}

	// Block lookups join on (court, workday)
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_blocked_slots_court_workday
		ON blocked_slots (court_id, workday_date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
