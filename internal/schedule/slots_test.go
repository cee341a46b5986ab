package schedule

import (
	"testing"

	"courtside/internal/shared/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSlots(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		duration float64
		want     []string
	}{
		{"single slot", "17:00", 0.5, []string{"17:00"}},
		{"one hour", "17:00", 1, []string{"17:00", "17:30"}},
		{"ninety minutes", "09:30", 1.5, []string{"09:30", "10:00", "10:30"}},
		{"wraps past midnight", "23:00", 2, []string{"23:00", "23:30", "00:00", "00:30"}},
		{"max duration", "10:00", 6, []string{
			"10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
			"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExpandSlots(tc.start, tc.duration)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpandSlotsSlotCountMatchesDuration(t *testing.T) {
	for duration := 0.5; duration <= MaxDurationHours; duration += 0.5 {
		slots, err := ExpandSlots("18:00", duration)
		require.NoError(t, err)
		assert.Len(t, slots, int(duration*2))
	}
}

func TestExpandSlotsRejectsMisalignedStart(t *testing.T) {
	var vErr *apperrors.ValidationError

	_, err := ExpandSlots("23:45", 1)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "start_time", vErr.Field)
}

func TestExpandSlotsRejectsBadDuration(t *testing.T) {
	var vErr *apperrors.ValidationError

	for _, duration := range []float64{0, -1, 0.75, 6.5} {
		_, err := ExpandSlots("17:00", duration)
		require.ErrorAs(t, err, &vErr, "duration %g", duration)
		assert.Equal(t, "duration", vErr.Field)
	}
}

func TestEndTime(t *testing.T) {
	slots, err := ExpandSlots("23:00", 2)
	require.NoError(t, err)
	assert.Equal(t, "01:00", EndTime(slots))

	assert.Equal(t, "", EndTime(nil))
}
