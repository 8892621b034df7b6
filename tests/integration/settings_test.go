//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
)

func TestGetSettings(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	resp := doRequest(t, "GET", "/admin/settings", admin, nil, http.StatusOK)
	var settings models.PricingSettings
	decodeJSON(t, resp, &settings)

	requireDecimal(t, "20", settings.LaborCostPerHour)
	requireDecimal(t, "0.10", settings.OverheadPct)
	requireDecimal(t, "0.25", settings.PriceRoundIncrement)
}

// Menu prices come from views that read the settings row live, so changing
// the rounding increment moves every published price at once.
func TestUpdateSettingsMovesMenuPrices(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	resp := doRequest(t, "PUT", "/admin/settings", admin, dto.UpdateSettingsInput{
		PriceRoundIncrement: decPtr("0.10"),
	}, http.StatusOK)
	var settings models.PricingSettings
	decodeJSON(t, resp, &settings)
	requireDecimal(t, "0.10", settings.PriceRoundIncrement)
	requireDecimal(t, "20", settings.LaborCostPerHour)

	defer doRequest(t, "PUT", "/admin/settings", admin, dto.UpdateSettingsInput{
		PriceRoundIncrement: decPtr("0.25"),
	}, http.StatusOK)

	// Seeded shot: 60s labor at 20/hr, 10% overhead, raw 0.366667.
	// Rounded up to 0.10 that is 0.40 instead of the usual 0.50.
	r := doRequest(t, "GET", "/cocktails/blow-job", "", nil, http.StatusOK)
	var item dto.MenuCocktailDTO
	decodeJSON(t, r, &item)
	require.True(t, item.PriceSuggested.Valid)
	require.True(t, item.PriceSuggested.Decimal.Equal(decimal.RequireFromString("0.40")),
		"price=%s", item.PriceSuggested.Decimal)
}
