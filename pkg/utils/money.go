package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

const priceScale = 2

// NormalizePrice cuts v to two decimal places (9.999 -> 9.99). Non-finite
// values are rejected.
func NormalizePrice(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return decimal.NewFromFloat(v).Truncate(priceScale).InexactFloat64(), true
}

// LineTotal sums unit*quantity pairs at cent precision.
func LineTotal(unitPrices []float64, quantities []int) decimal.Decimal {
	sum := decimal.Zero
	for i, price := range unitPrices {
		sum = sum.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantities[i]))))
	}
	return sum.Round(priceScale)
}

func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(priceScale).InexactFloat64()
}
