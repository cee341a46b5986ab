package database

import (
	"courtside/internal/blocks"
	"courtside/internal/bookings"
	"courtside/internal/courts"
	"courtside/internal/pricing"
	"courtside/internal/promos"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// blocked_slots ids default to uuid_generate_v4()
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&courts.Court{},
		&blocks.BlockedSlot{},
		&pricing.PricingRule{},
		&promos.PromoCode{},
		&bookings.Booking{},
		&bookings.SlotClaim{},
	)
}

// Seed fills an empty install with the default court catalog and a base
// pricing rule per court, matching the static fallback table so quoted
// prices are identical before and after an admin touches pricing.
func Seed(db *gorm.DB) error {
	var courtCount int64
	if err := db.Model(&courts.Court{}).Count(&courtCount).Error; err != nil {
		return err
	}
	if courtCount == 0 {
		defaults := courts.DefaultCourts()
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}

	var allCourts []courts.Court
	if err := db.Find(&allCourts).Error; err != nil {
		return err
	}

	fallback := pricing.FallbackTable()
	for _, court := range allCourts {
		base, ok := fallback[court.ID]
		if !ok {
			continue
		}

		var ruleCount int64
		err := db.Model(&pricing.PricingRule{}).
			Where("court_id = ?", court.ID).
			Count(&ruleCount).Error
		if err != nil {
			return err
		}
		if ruleCount > 0 {
			continue
		}

		rule := pricing.PricingRule{
			CourtID:   court.ID,
			CourtName: court.Name,
			Sport:     court.Sport,
			BasePrice: base,
			IsActive:  true,
		}
		if err := db.Create(&rule).Error; err != nil {
			return err
		}
	}

	return nil
}
