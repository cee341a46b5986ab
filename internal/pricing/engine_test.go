package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestPeakSlotsUsePeakOverride(t *testing.T) {
	rule := &PricingRule{
		CourtID:   "padel-1",
		BasePrice: 1500,
		PeakPrice: int64Ptr(1800),
	}

	// Monday 2025-01-06, both slots inside the 17:00–02:00 peak window
	perSlot := PriceSlots(rule, time.Monday, []string{"17:00", "17:30"})

	assert.Equal(t, []int64{1800, 1800}, perSlot)
	assert.Equal(t, int64(3600), Sum(perSlot))
}

func TestWeekendOverrideWinsRegardlessOfHour(t *testing.T) {
	rule := &PricingRule{
		CourtID:      "padel-1",
		BasePrice:    1500,
		PeakPrice:    int64Ptr(2500),
		WeekendPrice: int64Ptr(1800),
	}

	// Saturday 2025-01-11: the weekend tier outranks peak for the same hours
	perSlot := PriceSlots(rule, time.Saturday, []string{"17:00", "17:30"})

	assert.Equal(t, []int64{1800, 1800}, perSlot)
	assert.Equal(t, int64(3600), Sum(perSlot))
}

func TestTierWindows(t *testing.T) {
	rule := &PricingRule{
		BasePrice:    1000,
		PeakPrice:    int64Ptr(2000),
		OffPeakPrice: int64Ptr(500),
	}

	cases := []struct {
		slot string
		want int64
	}{
		{"16:30", 500},  // off-peak 14:00–17:00
		{"14:00", 500},  // off-peak lower bound
		{"13:30", 1000}, // base before off-peak
		{"17:00", 2000}, // peak lower bound
		{"23:30", 2000}, // late evening peak
		{"00:00", 2000}, // post-midnight peak
		{"01:30", 2000}, // last peak slot
		{"02:00", 500},  // early-morning off-peak
		{"05:30", 500},  // off-peak until 06:00
		{"06:00", 1000}, // base after off-peak
		{"10:00", 1000}, // daytime base
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, PerSlotPrice(rule, time.Wednesday, tc.slot), "slot %s", tc.slot)
	}
}

func TestUnsetOverridesFallThroughToBase(t *testing.T) {
	rule := &PricingRule{BasePrice: 1200}

	// No overrides set: every tier falls through to base
	assert.Equal(t, int64(1200), PerSlotPrice(rule, time.Saturday, "18:00"))
	assert.Equal(t, int64(1200), PerSlotPrice(rule, time.Monday, "18:00"))
	assert.Equal(t, int64(1200), PerSlotPrice(rule, time.Monday, "15:00"))
}

func TestWeekendUnsetFallsThroughToPeak(t *testing.T) {
	rule := &PricingRule{
		BasePrice: 1000,
		PeakPrice: int64Ptr(1600),
	}

	// Saturday evening without a weekend override still gets peak pricing
	assert.Equal(t, int64(1600), PerSlotPrice(rule, time.Saturday, "19:00"))
	// Saturday morning falls to base
	assert.Equal(t, int64(1000), PerSlotPrice(rule, time.Saturday, "10:00"))
}

func TestRuleValidityWindow(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	rule := &PricingRule{BasePrice: 1000, EffectiveFrom: &from, EffectiveUntil: &until}

	assert.True(t, rule.CoversDate(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rule.CoversDate(from))
	assert.True(t, rule.CoversDate(until))
	assert.False(t, rule.CoversDate(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, rule.CoversDate(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFallbackPerSlot(t *testing.T) {
	assert.Equal(t, int64(2750), FallbackPerSlot("padel-2"))
	assert.Equal(t, int64(1250), FallbackPerSlot("futsal-1"))
	// Unknown courts still resolve to a price: pricing is never null
	assert.Equal(t, int64(3000), FallbackPerSlot("squash-9"))
}
