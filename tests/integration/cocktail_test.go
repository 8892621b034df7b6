//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/adanilkinca/techcockbar/dto"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(v int) *int { return &v }

func createIngredient(t *testing.T, token string, input dto.CreateIngredientInput) dto.IngredientDTO {
	t.Helper()
	resp := doRequest(t, "POST", "/admin/ingredients", token, input, http.StatusCreated)
	var out dto.IngredientDTO
	decodeJSON(t, resp, &out)
	require.NotZero(t, out.ID)
	return out
}

func createCocktail(t *testing.T, token string, input dto.CreateCocktailInput) dto.CocktailDetailDTO {
	t.Helper()
	resp := doRequest(t, "POST", "/admin/cocktails", token, input, http.StatusCreated)
	var out dto.CocktailDetailDTO
	decodeJSON(t, resp, &out)
	require.NotZero(t, out.ID)
	return out
}

func deleteCocktail(t *testing.T, token string, id uint) {
	t.Helper()
	doRequest(t, "DELETE", fmt.Sprintf("/admin/cocktails/%d", id), token, nil, http.StatusOK)
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestCocktailCreateWithRecipe(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	vodka := createIngredient(t, admin, dto.CreateIngredientInput{
		Name:       "Wheat Vodka",
		Type:       strPtr("spirit"),
		ABVPercent: decPtr("40"),
		CostPerOz:  decPtr("0.80"),
	})

	created := createCocktail(t, admin, dto.CreateCocktailInput{
		Name:          "Frozen Tundra",
		GlassType:     strPtr("Rocks"),
		TimeToMakeSec: intPtr(90),
		Tags:          []string{"strong"},
		Lines: []dto.LineInput{
			{IngredientID: vodka.ID, Amount: decimal.RequireFromString("2"), Unit: "oz"},
		},
	})
	defer deleteCocktail(t, admin, created.ID)

	require.Equal(t, "frozen-tundra", created.Slug)
	require.Equal(t, "draft", created.Status)
	require.Equal(t, []string{"strong"}, created.Tags)
	require.Len(t, created.Lines, 1)
	require.Equal(t, "Wheat Vodka", created.Lines[0].IngredientName)
	requireDecimal(t, "2", created.Lines[0].AmountOz)

	// 2 oz at 40% costing 1.60, plus 90s labor at 20/hr, 10% overhead.
	requireDecimal(t, "2", created.Totals.VolumeOz)
	requireDecimal(t, "40", created.Totals.ABVPercent)
	requireDecimal(t, "1.60", created.Totals.Cost)
	require.True(t, created.Totals.PriceRaw.Valid)
	requireDecimal(t, "2.31", created.Totals.PriceRaw.Decimal)
	require.True(t, created.Totals.PriceSuggested.Valid)
	requireDecimal(t, "2.50", created.Totals.PriceSuggested.Decimal)
	require.True(t, created.PriceAuto.Valid)
	requireDecimal(t, "2.50", created.PriceAuto.Decimal)
}

func TestCocktailCreateUnknownIngredient(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	resp := doRequest(t, "POST", "/admin/cocktails", admin, dto.CreateCocktailInput{
		Name: "Ghost Recipe",
		Lines: []dto.LineInput{
			{IngredientID: 999999, Amount: decimal.RequireFromString("1"), Unit: "oz"},
		},
	}, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "ingredient does not exist")
}

func TestCocktailSlugHandling(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	first := createCocktail(t, admin, dto.CreateCocktailInput{Name: "Twin Peak"})
	defer deleteCocktail(t, admin, first.ID)
	require.Equal(t, "twin-peak", first.Slug)

	// Same name derives a suffixed slug instead of failing.
	second := createCocktail(t, admin, dto.CreateCocktailInput{Name: "Twin Peak"})
	defer deleteCocktail(t, admin, second.ID)
	require.Equal(t, "twin-peak-2", second.Slug)

	// An explicit duplicate slug is a conflict.
	resp := doRequest(t, "POST", "/admin/cocktails", admin, dto.CreateCocktailInput{
		Name: "Impostor",
		Slug: strPtr("twin-peak"),
	}, http.StatusConflict)
	require.Contains(t, resp.Body.String(), "slug already in use")
}

func TestCocktailUpdateFieldsAndTags(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	created := createCocktail(t, admin, dto.CreateCocktailInput{
		Name: "Harbor Light",
		Tags: []string{"sour"},
	})
	defer deleteCocktail(t, admin, created.ID)

	resp := doRequest(t, "PUT", fmt.Sprintf("/admin/cocktails/%d", created.ID), admin, dto.UpdateCocktailInput{
		Name:             strPtr("Harbor Lights"),
		GlassType:        strPtr("Coupe"),
		DescriptionShort: strPtr("Bright and tart."),
		TimeToMakeSec:    intPtr(120),
		Tags:             []string{"sour", "citrus"},
	}, http.StatusOK)

	var updated dto.CocktailDetailDTO
	decodeJSON(t, resp, &updated)
	require.Equal(t, "Harbor Lights", updated.Name)
	require.Equal(t, "Coupe", *updated.GlassType)
	require.Equal(t, "Bright and tart.", *updated.DescriptionShort)
	require.Equal(t, 120, updated.TimeToMakeSec)
	require.ElementsMatch(t, []string{"sour", "citrus"}, updated.Tags)
	// The slug stays until changed explicitly.
	require.Equal(t, created.Slug, updated.Slug)
}

func TestCocktailStatusRoundTrip(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	created := createCocktail(t, admin, dto.CreateCocktailInput{Name: "Harvest Moon"})
	defer deleteCocktail(t, admin, created.ID)

	statusPath := fmt.Sprintf("/admin/cocktails/%d/status", created.ID)

	resp := doRequest(t, "POST", statusPath, admin,
		dto.UpdateCocktailStatusInput{Status: "published"}, http.StatusOK)
	var detail dto.CocktailDetailDTO
	decodeJSON(t, resp, &detail)
	require.Equal(t, "published", detail.Status)

	doRequest(t, "GET", "/cocktails/"+created.Slug, "", nil, http.StatusOK)

	doRequest(t, "POST", statusPath, admin,
		dto.UpdateCocktailStatusInput{Status: "archived"}, http.StatusOK)
	doRequest(t, "GET", "/cocktails/"+created.Slug, "", nil, http.StatusNotFound)

	doRequest(t, "POST", statusPath, admin,
		dto.UpdateCocktailStatusInput{Status: "frozen"}, http.StatusBadRequest)
}

func TestCocktailReplaceIngredients(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	vodka := createIngredient(t, admin, dto.CreateIngredientInput{
		Name:       "Rye Vodka",
		Type:       strPtr("spirit"),
		ABVPercent: decPtr("40"),
		CostPerOz:  decPtr("0.80"),
	})
	syrup := createIngredient(t, admin, dto.CreateIngredientInput{
		Name:        "Vanilla Syrup",
		Type:        strPtr("syrup"),
		IsHousemade: true,
	})

	created := createCocktail(t, admin, dto.CreateCocktailInput{
		Name:          "White Night",
		TimeToMakeSec: intPtr(90),
		Lines: []dto.LineInput{
			{IngredientID: vodka.ID, Amount: decimal.RequireFromString("2"), Unit: "oz"},
		},
	})
	defer deleteCocktail(t, admin, created.ID)

	resp := doRequest(t, "PUT", fmt.Sprintf("/admin/cocktails/%d/ingredients", created.ID), admin, dto.ReplaceLinesInput{
		Lines: []dto.LineInput{
			{IngredientID: vodka.ID, Amount: decimal.RequireFromString("1"), Unit: "oz"},
			{IngredientID: syrup.ID, Amount: decimal.RequireFromString("0.5"), Unit: "oz", PrepNote: strPtr("homemade")},
		},
	}, http.StatusOK)

	var updated dto.CocktailDetailDTO
	decodeJSON(t, resp, &updated)
	require.Len(t, updated.Lines, 2)
	require.Equal(t, int16(1), updated.Lines[0].Seq)
	require.Equal(t, int16(2), updated.Lines[1].Seq)
	require.Equal(t, "homemade", *updated.Lines[1].PrepNote)

	// 1 oz at 40% plus 0.5 oz of zero-proof syrup: 1.5 oz, 26.67% ABV,
	// cost 0.80, labor 0.50, raw 1.43, menu price rounds up to 1.50.
	requireDecimal(t, "1.5", updated.Totals.VolumeOz)
	requireDecimal(t, "26.67", updated.Totals.ABVPercent)
	requireDecimal(t, "0.80", updated.Totals.Cost)
	requireDecimal(t, "1.43", updated.Totals.PriceRaw.Decimal)
	requireDecimal(t, "1.50", updated.Totals.PriceSuggested.Decimal)
	requireDecimal(t, "1.50", updated.PriceAuto.Decimal)

	// Swapping in an unknown ingredient leaves the recipe untouched.
	doRequest(t, "PUT", fmt.Sprintf("/admin/cocktails/%d/ingredients", created.ID), admin, dto.ReplaceLinesInput{
		Lines: []dto.LineInput{
			{IngredientID: 999999, Amount: decimal.RequireFromString("1"), Unit: "oz"},
		},
	}, http.StatusBadRequest)

	after := getCocktail(t, admin, created.ID)
	require.Len(t, after.Lines, 2)
}

func TestCocktailMetricConversion(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	gin := createIngredient(t, admin, dto.CreateIngredientInput{
		Name:       "Dry Gin",
		Type:       strPtr("spirit"),
		ABVPercent: decPtr("47"),
	})

	created := createCocktail(t, admin, dto.CreateCocktailInput{
		Name: "Metric Martini",
		Lines: []dto.LineInput{
			{IngredientID: gin.ID, Amount: decimal.RequireFromString("30"), Unit: "ml"},
			{IngredientID: gin.ID, Amount: decimal.RequireFromString("1"), Unit: "wedge"},
		},
	})
	defer deleteCocktail(t, admin, created.ID)

	require.Len(t, created.Lines, 2)
	requireDecimal(t, "1.0144", created.Lines[0].AmountOz)
	requireDecimal(t, "0", created.Lines[1].AmountOz)
	requireDecimal(t, "1.0144", created.Totals.VolumeOz)
}

func getCocktail(t *testing.T, token string, id uint) dto.CocktailDetailDTO {
	t.Helper()
	resp := doRequest(t, "GET", fmt.Sprintf("/admin/cocktails/%d", id), token, nil, http.StatusOK)
	var out dto.CocktailDetailDTO
	decodeJSON(t, resp, &out)
	return out
}

func TestCocktailAdminList(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	resp := doRequest(t, "GET", "/admin/cocktails?status=published", admin, nil, http.StatusOK)
	var rows []dto.CocktailAdminRow
	decodeJSON(t, resp, &rows)

	var seeded *dto.CocktailAdminRow
	for i := range rows {
		if rows[i].Slug == "blow-job" {
			seeded = &rows[i]
		}
	}
	require.NotNil(t, seeded)
	require.Equal(t, "published", seeded.Status)
	require.True(t, seeded.ABVPercent.Valid)
	requireDecimal(t, "22.5", seeded.ABVPercent.Decimal)

	doRequest(t, "GET", "/admin/cocktails?status=frozen", admin, nil, http.StatusBadRequest)
}

func TestCocktailNotFound(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	doRequest(t, "GET", "/admin/cocktails/999999", admin, nil, http.StatusNotFound)
	doRequest(t, "DELETE", "/admin/cocktails/999999", admin, nil, http.StatusNotFound)
	doRequest(t, "POST", "/admin/cocktails/999999/status", admin,
		dto.UpdateCocktailStatusInput{Status: "published"}, http.StatusNotFound)
}
