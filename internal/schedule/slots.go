package schedule

import (
	"fmt"
	"math"

	"courtside/internal/shared/apperrors"
)

const (
	// SlotMinutes is the width of the booking grid
	SlotMinutes = 30

	// MaxDurationHours caps a single booking
	MaxDurationHours = 6.0
)

// ExpandSlots expands (start "HH:mm", duration in hours) into the ordered
// list of slot labels the booking occupies. Labels wrap past midnight at the
// clock level only; attributing wrapped labels to a workday is Normalize's job.
func ExpandSlots(start string, durationHours float64) ([]string, error) {
	hour, minute, err := ParseClock(start)
	if err != nil {
		return nil, err
	}

	if minute%SlotMinutes != 0 {
		return nil, apperrors.NewValidationError("start_time", "must be aligned to the 30-minute grid")
	}

	if err := ValidateDuration(durationHours); err != nil {
		return nil, err
	}

	count := int(durationHours * 60 / SlotMinutes)
	slots := make([]string, 0, count)
	startMinutes := hour*60 + minute
	for i := 0; i < count; i++ {
		total := startMinutes + i*SlotMinutes
		slots = append(slots, fmt.Sprintf("%02d:%02d", (total/60)%24, total%60))
	}
	return slots, nil
}

// ValidateDuration checks that a duration is positive, a multiple of half an
// hour and within the venue cap.
func ValidateDuration(durationHours float64) error {
	if durationHours <= 0 {
		return apperrors.NewValidationError("duration", "must be greater than 0")
	}
	if durationHours > MaxDurationHours {
		return apperrors.NewValidationError("duration", fmt.Sprintf("maximum duration is %g hours", MaxDurationHours))
	}
	halves := durationHours * 2
	if math.Abs(halves-math.Round(halves)) > 1e-9 {
		return apperrors.NewValidationError("duration", "must be a multiple of 0.5 hours")
	}
	return nil
}

// EndTime returns the clock label one grid step after the last slot.
func EndTime(slots []string) string {
	if len(slots) == 0 {
		return ""
	}
	hour, minute, err := ParseClock(slots[len(slots)-1])
	if err != nil {
		return ""
	}
	total := hour*60 + minute + SlotMinutes
	return fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)
}
