package service

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// lineTotal is kept exact; rounding happens once on the cart sum.
func lineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// roundToUnit rounds half away from zero, which equals half-up for the
// non-negative amounts handled here.
func roundToUnit(amount decimal.Decimal) int64 {
	return amount.Round(0).IntPart()
}

func percentageOf(total int64, percentage int) int64 {
	return roundToUnit(decimal.NewFromInt(total).
		Mul(decimal.NewFromInt(int64(percentage))).
		Div(hundred))
}
