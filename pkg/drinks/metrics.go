package drinks

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Line is one ingredient measure of a recipe.
type Line struct {
	AmountOz    decimal.Decimal
	AmountInput decimal.Decimal
	UnitInput   string
	ABVPercent  decimal.Decimal
	CostPerOz   decimal.Decimal
}

// Totals aggregates a recipe's volume, strength and ingredient cost.
type Totals struct {
	VolumeOz      decimal.Decimal
	PureAlcoholOz decimal.Decimal
	ABVPercent    decimal.Decimal
	Cost          decimal.Decimal
}

// ComputeTotals walks the recipe lines and returns volume in ounces,
// ABV rounded to two decimals and ingredient cost rounded to cents.
// A recipe with no measurable volume has zero ABV.
func ComputeTotals(lines []Line, factors map[string]decimal.Decimal) Totals {
	volume := decimal.Zero
	pure := decimal.Zero
	cost := decimal.Zero

	for _, l := range lines {
		oz := LineOunces(l.AmountOz, l.AmountInput, l.UnitInput, factors)
		if oz.Sign() <= 0 {
			continue
		}
		volume = volume.Add(oz)
		if l.ABVPercent.Sign() > 0 {
			pure = pure.Add(oz.Mul(l.ABVPercent).Div(hundred))
		}
		if l.CostPerOz.Sign() > 0 {
			cost = cost.Add(oz.Mul(l.CostPerOz))
		}
	}

	abv := decimal.Zero
	if volume.Sign() > 0 {
		abv = pure.Div(volume).Mul(hundred)
	}

	return Totals{
		VolumeOz:      volume,
		PureAlcoholOz: pure,
		ABVPercent:    abv.Round(2),
		Cost:          cost.Round(2),
	}
}
