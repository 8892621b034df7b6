package drinks

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestToOunces(t *testing.T) {
	if got := ToOunces(dec("1.5"), "oz", nil); !got.Equal(dec("1.5")) {
		t.Fatalf("expected 1.5 oz, got %s", got)
	}
	if got := ToOunces(dec("30"), "ml", nil); !got.Equal(dec("1.0144")) {
		t.Fatalf("expected 1.0144 oz for 30 ml, got %s", got)
	}
	if got := ToOunces(dec("2"), "dash", nil); !got.Equal(dec("0.06")) {
		t.Fatalf("expected 0.06 oz for 2 dashes, got %s", got)
	}
	if got := ToOunces(dec("1"), "leaf", nil); !got.IsZero() {
		t.Fatalf("expected garnish to convert to zero, got %s", got)
	}
	if got := ToOunces(dec("3"), "splash", nil); !got.IsZero() {
		t.Fatalf("expected unknown unit to convert to zero, got %s", got)
	}
	if got := ToOunces(dec("-1"), "oz", nil); !got.IsZero() {
		t.Fatalf("expected negative amount to convert to zero, got %s", got)
	}
}

func TestToOuncesFactorsOverride(t *testing.T) {
	factors := map[string]decimal.Decimal{"barspoon": dec("0.125")}
	if got := ToOunces(dec("2"), "barspoon", factors); !got.Equal(dec("0.25")) {
		t.Fatalf("expected 0.25 oz for 2 barspoons, got %s", got)
	}
	// Table factor wins over the builtin.
	factors["dash"] = dec("0.05")
	if got := ToOunces(dec("1"), "dash", factors); !got.Equal(dec("0.05")) {
		t.Fatalf("expected table factor to win, got %s", got)
	}
}

func TestLineOuncesPrefersStoredAmount(t *testing.T) {
	if got := LineOunces(dec("0.5"), dec("999"), "ml", nil); !got.Equal(dec("0.5")) {
		t.Fatalf("expected stored 0.5 oz to win, got %s", got)
	}
	if got := LineOunces(decimal.Zero, dec("15"), "ml", nil); !got.Equal(dec("0.5072")) {
		t.Fatalf("expected 0.5072 oz from 15 ml, got %s", got)
	}
}

func TestComputeTotals(t *testing.T) {
	// A layered shot: two 0.5 oz liqueurs and a garnish with no volume.
	lines := []Line{
		{AmountOz: dec("0.5"), ABVPercent: dec("28"), CostPerOz: dec("0.95")},
		{AmountOz: dec("0.5"), ABVPercent: dec("17"), CostPerOz: dec("1.10")},
		{AmountOz: decimal.Zero, AmountInput: dec("5"), UnitInput: "wedge", CostPerOz: dec("0.20")},
	}

	got := ComputeTotals(lines, nil)
	if !got.VolumeOz.Equal(dec("1")) {
		t.Fatalf("expected 1 oz volume, got %s", got.VolumeOz)
	}
	if !got.ABVPercent.Equal(dec("22.5")) {
		t.Fatalf("expected 22.5%% ABV, got %s", got.ABVPercent)
	}
	if !got.Cost.Equal(dec("1.03")) {
		t.Fatalf("expected cost 1.03, got %s", got.Cost)
	}
}

func TestComputeTotalsFromRawInput(t *testing.T) {
	// Same recipe entered in ml with no backfilled ounce amounts.
	lines := []Line{
		{AmountInput: dec("15"), UnitInput: "ml", ABVPercent: dec("28")},
		{AmountInput: dec("15"), UnitInput: "ml", ABVPercent: dec("17")},
	}

	got := ComputeTotals(lines, nil)
	if !got.ABVPercent.Equal(dec("22.5")) {
		t.Fatalf("expected 22.5%% ABV, got %s", got.ABVPercent)
	}
}

func TestComputeTotalsEmptyRecipe(t *testing.T) {
	got := ComputeTotals(nil, nil)
	if !got.VolumeOz.IsZero() || !got.ABVPercent.IsZero() || !got.Cost.IsZero() {
		t.Fatalf("expected zero totals for empty recipe, got %+v", got)
	}
}

func TestComputePrice(t *testing.T) {
	s := Settings{
		LaborCostPerHour:    dec("20"),
		OverheadPct:         dec("0.10"),
		PriceRoundIncrement: dec("0.25"),
	}

	// cost 1.03, 90s prep: labor 0.50, raw (1.03+0.50)*1.10 = 1.683.
	got := ComputePrice(dec("1.03"), 90, s)
	if !got.Raw.Equal(dec("1.683")) {
		t.Fatalf("expected raw 1.683, got %s", got.Raw)
	}
	if !got.Rounded.Equal(dec("1.75")) {
		t.Fatalf("expected menu price 1.75, got %s", got.Rounded)
	}
}

func TestComputePriceOnIncrementBoundary(t *testing.T) {
	s := Settings{
		LaborCostPerHour:    dec("0"),
		OverheadPct:         dec("0"),
		PriceRoundIncrement: dec("0.25"),
	}
	got := ComputePrice(dec("1.75"), 0, s)
	if !got.Rounded.Equal(dec("1.75")) {
		t.Fatalf("expected price already on the increment to stay, got %s", got.Rounded)
	}
}

func TestComputePriceNoIncrement(t *testing.T) {
	s := Settings{
		LaborCostPerHour:    dec("20"),
		OverheadPct:         dec("0.10"),
		PriceRoundIncrement: decimal.Zero,
	}
	got := ComputePrice(dec("1.03"), 90, s)
	if !got.Rounded.Equal(dec("1.68")) {
		t.Fatalf("expected cent rounding without increment, got %s", got.Rounded)
	}
}
