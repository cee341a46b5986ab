package schedule

import (
	"fmt"
	"time"

	"courtside/internal/shared/apperrors"
)

const (
	// WorkdayDateLayout is the canonical workday date format
	WorkdayDateLayout = "2006-01-02"

	// SlotLabelLayout is the canonical slot label format
	SlotLabelLayout = "15:04"
)

// Workday maps (display date, clock time) pairs onto absolute instants.
// The venue's operating day runs past local midnight: clock times before
// the end-of-workday boundary belong to the previous displayed date.
type Workday struct {
	location  *time.Location
	endMinute int
}

// NewWorkday creates a Workday normalizer for the given IANA timezone and
// end-of-workday boundary expressed as minutes after midnight (330 = 05:30).
func NewWorkday(timezone string, endMinute int) (*Workday, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid venue timezone %q: %w", timezone, err)
	}
	if endMinute <= 0 || endMinute >= 24*60 {
		return nil, fmt.Errorf("workday end minute out of range: %d", endMinute)
	}
	return &Workday{location: loc, endMinute: endMinute}, nil
}

// ParseDate parses a workday date string.
func (w *Workday) ParseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(WorkdayDateLayout, date, w.location)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
	}
	return d, nil
}

// Normalize resolves (workday date, "HH:mm" clock time) to the absolute UTC
// instant the slot starts at. Clock times before the workday boundary land on
// the next calendar date while keeping their workday attribution; "05:30"
// itself is not advanced.
func (w *Workday) Normalize(date, clock string) (time.Time, error) {
	base, err := w.ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	if hour*60+minute < w.endMinute {
		base = base.AddDate(0, 0, 1)
	}

	local := time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, w.location)
	return local.UTC(), nil
}

// Weekday returns the day of week of the displayed workday date. Pricing
// tiers key off the selected date, not the post-midnight calendar date.
func (w *Workday) Weekday(date string) (time.Weekday, error) {
	d, err := w.ParseDate(date)
	if err != nil {
		return 0, err
	}
	return d.Weekday(), nil
}

// Day returns the calendar date of an instant in the venue timezone.
func (w *Workday) Day(t time.Time) time.Time {
	local := t.In(w.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, w.location)
}

// Today returns the current calendar date in the venue timezone.
func (w *Workday) Today() time.Time {
	return w.Day(time.Now())
}

// Grid returns every slot label of a workday in chronological order,
// starting at the workday boundary and wrapping past midnight.
func (w *Workday) Grid() []string {
	count := 24 * 60 / SlotMinutes
	labels := make([]string, 0, count)
	for i := 0; i < count; i++ {
		total := (w.endMinute + i*SlotMinutes) % (24 * 60)
		labels = append(labels, fmt.Sprintf("%02d:%02d", total/60, total%60))
	}
	return labels
}

// SlotOrder returns a slot label's chronological position within the
// workday, so post-midnight slots order after the evening ones they follow.
// Malformed labels order first.
func (w *Workday) SlotOrder(label string) int {
	hour, minute, err := ParseClock(label)
	if err != nil {
		return -1
	}
	m := hour*60 + minute
	if m < w.endMinute {
		m += 24 * 60
	}
	return m
}

// ParseClock parses an "HH:mm" clock string.
func ParseClock(clock string) (hour, minute int, err error) {
	t, perr := time.Parse(SlotLabelLayout, clock)
	if perr != nil {
		return 0, 0, apperrors.NewValidationError("time", "must be in HH:mm format")
	}
	return t.Hour(), t.Minute(), nil
}
