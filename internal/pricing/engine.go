package pricing

import (
	"time"

	"courtside/internal/schedule"
)

// tier is one predicate→price entry. Tiers are evaluated in order,
// first match wins, so the tie-break between overlapping windows is
// explicit and testable.
type tier struct {
	name    string
	applies func(weekday time.Weekday, hour int) bool
	price   func(rule *PricingRule) *int64
}

// Tier windows are defined in clock time, not workday-relative time,
// because demand tracks the clock.
var tiers = []tier{
	{
		name: "weekend",
		applies: func(weekday time.Weekday, _ int) bool {
			return weekday == time.Saturday || weekday == time.Sunday
		},
		price: func(rule *PricingRule) *int64 { return rule.WeekendPrice },
	},
	{
		name: "peak", // 17:00–02:00
		applies: func(_ time.Weekday, hour int) bool {
			return hour >= 17 || hour < 2
		},
		price: func(rule *PricingRule) *int64 { return rule.PeakPrice },
	},
	{
		name: "off_peak", // 14:00–17:00 and 02:00–06:00
		applies: func(_ time.Weekday, hour int) bool {
			return (hour >= 14 && hour < 17) || (hour >= 2 && hour < 6)
		},
		price: func(rule *PricingRule) *int64 { return rule.OffPeakPrice },
	},
}

// PerSlotPrice resolves one slot's price against the rule's tier list.
func PerSlotPrice(rule *PricingRule, weekday time.Weekday, slotLabel string) int64 {
	hour, _, err := schedule.ParseClock(slotLabel)
	if err != nil {
		return rule.BasePrice
	}

	for _, t := range tiers {
		if !t.applies(weekday, hour) {
			continue
		}
		if override := t.price(rule); override != nil {
			return *override
		}
	}
	return rule.BasePrice
}

// PriceSlots prices every slot against the rule. Deterministic given
// (rule, weekday, slots).
func PriceSlots(rule *PricingRule, weekday time.Weekday, slots []string) []int64 {
	prices := make([]int64, len(slots))
	for i, slot := range slots {
		prices[i] = PerSlotPrice(rule, weekday, slot)
	}
	return prices
}

// Sum totals a per-slot price list.
func Sum(prices []int64) int64 {
	var total int64
	for _, p := range prices {
		total += p
	}
	return total
}
