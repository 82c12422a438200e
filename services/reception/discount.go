package reception

import "strings"

// Occasion discount tiers. Matching is a case-insensitive substring check so
// "romantic honeymoon trip" lands in the honeymoon tier. First match wins;
// unrecognized or empty occasions get no discount.
var discountTiers = []struct {
	keyword string
	percent float64
}{
	{"honeymoon", 20},
	{"anniversary", 15},
	{"wedding", 15},
	{"birthday", 10},
	{"graduation", 10},
	{"business", 5},
}

// DiscountFor maps an occasion to a discount percentage in [0,100].
func DiscountFor(occasion string) float64 {
	normalized := strings.ToLower(strings.TrimSpace(occasion))
	if normalized == "" {
		return 0
	}
	for _, tier := range discountTiers {
		if strings.Contains(normalized, tier.keyword) {
			return tier.percent
		}
	}
	return 0
}

// ApplyDiscount returns price reduced by percent. The result is never
// negative for valid inputs.
func ApplyDiscount(price, percent float64) float64 {
	final := price * (1 - percent/100)
	if final < 0 {
		return 0
	}
	return final
}
