package pricing

// Static fallback table: per-slot prices used whenever no pricing rule
// resolves or the rule store fails. Pricing never blocks a booking attempt.
var fallbackPrices = map[string]int64{
	"padel-1":      3000,
	"padel-2":      2750,
	"cricket-1":    1500,
	"cricket-2":    1750,
	"futsal-1":     1250,
	"pickleball-1": 1500,
}

// defaultFallbackPrice covers courts missing from the table
const defaultFallbackPrice int64 = 3000

// FallbackPerSlot returns the static per-slot price for a court.
func FallbackPerSlot(courtID string) int64 {
	if price, ok := fallbackPrices[courtID]; ok {
		return price
	}
	return defaultFallbackPrice
}

// FallbackTable returns a copy of the static table, used to seed default
// pricing rules so a fresh install starts from the same numbers.
func FallbackTable() map[string]int64 {
	table := make(map[string]int64, len(fallbackPrices))
	for id, price := range fallbackPrices {
		table[id] = price
	}
	return table
}
