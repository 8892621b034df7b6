package drinks

import "github.com/shopspring/decimal"

var secondsPerHour = decimal.NewFromInt(3600)

// Settings mirrors the single pricing settings row.
type Settings struct {
	LaborCostPerHour    decimal.Decimal
	OverheadPct         decimal.Decimal
	PriceRoundIncrement decimal.Decimal
}

// Price carries both the exact computed price and the menu price.
type Price struct {
	Raw     decimal.Decimal
	Rounded decimal.Decimal
}

// ComputePrice prices a recipe: (ingredient cost + labor) * (1 + overhead),
// where labor is the hourly rate prorated over the prep time. The menu
// price rounds up to the configured increment, or to cents when no
// increment is set.
func ComputePrice(cost decimal.Decimal, timeToMakeSec int, s Settings) Price {
	labor := s.LaborCostPerHour.
		Mul(decimal.NewFromInt(int64(timeToMakeSec))).
		Div(secondsPerHour)

	raw := cost.Add(labor).Mul(decimal.NewFromInt(1).Add(s.OverheadPct))

	var rounded decimal.Decimal
	if s.PriceRoundIncrement.Sign() > 0 {
		rounded = raw.Div(s.PriceRoundIncrement).Ceil().Mul(s.PriceRoundIncrement)
	} else {
		rounded = raw.Round(2)
	}

	return Price{Raw: raw.Round(6), Rounded: rounded.Round(3)}
}
