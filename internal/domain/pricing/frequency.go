package pricing

import (
	"math"

	"clearview_estimator/internal/domain/entities"
)

// The three-month cadence carries the largest discount on purpose.
var frequencyDiscounts = map[entities.Frequency]int{
	entities.FrequencyOneTime:     0,
	entities.FrequencyThreeMonths: 20,
	entities.FrequencySixMonths:   15,
	entities.FrequencyYearly:      10,
}

// DiscountPercent returns the discount for a frequency, 0 when unknown.
func DiscountPercent(freq entities.Frequency) int {
	return frequencyDiscounts[freq]
}

// ApplyDiscount discounts a base price for the given frequency.
// The result depends only on base, so applying it repeatedly never compounds.
func ApplyDiscount(base int64, freq entities.Frequency) int64 {
	pct := DiscountPercent(freq)
	if pct == 0 {
		return base
	}
	return int64(math.Round(float64(base) * (1 - float64(pct)/100)))
}
