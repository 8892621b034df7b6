package drinks

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OzPerMl converts milliliters to US fluid ounces (1 oz = 29.5735 ml).
var OzPerMl = decimal.NewFromFloat(0.0338140227)

// builtinFactors covers the bar's standard measures when the units table
// carries no explicit factor. Garnish units count as zero volume.
var builtinFactors = map[string]decimal.Decimal{
	"oz":     decimal.NewFromInt(1),
	"ounce":  decimal.NewFromInt(1),
	"ounces": decimal.NewFromInt(1),
	"ml":     OzPerMl,
	"dash":   decimal.NewFromFloat(0.03),
	"leaf":   decimal.Zero,
	"wedge":  decimal.Zero,
}

// ToOunces converts a user-entered amount to ounces. The factors map
// (unit name, lowercase, to ounces per unit) takes precedence over the
// builtin measures. Unknown units convert to zero rather than guessing.
func ToOunces(amount decimal.Decimal, unit string, factors map[string]decimal.Decimal) decimal.Decimal {
	if amount.Sign() <= 0 {
		return decimal.Zero
	}
	name := strings.ToLower(strings.TrimSpace(unit))
	if f, ok := factors[name]; ok {
		return amount.Mul(f).Round(4)
	}
	if f, ok := builtinFactors[name]; ok {
		return amount.Mul(f).Round(4)
	}
	return decimal.Zero
}

// LineOunces resolves the effective ounce volume of a recipe line,
// preferring the stored amount when one has been backfilled.
func LineOunces(storedOz, amount decimal.Decimal, unit string, factors map[string]decimal.Decimal) decimal.Decimal {
	if storedOz.Sign() > 0 {
		return storedOz
	}
	return ToOunces(amount, unit, factors)
}
