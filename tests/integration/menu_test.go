//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/adanilkinca/techcockbar/dto"
)

func findMenuItem(items []dto.MenuCocktailDTO, slug string) *dto.MenuCocktailDTO {
	for i := range items {
		if items[i].Slug == slug {
			return &items[i]
		}
	}
	return nil
}

func TestMenuListsSeededCocktail(t *testing.T) {
	resp := doRequest(t, "GET", "/cocktails", "", nil, http.StatusOK)

	var items []dto.MenuCocktailDTO
	decodeJSON(t, resp, &items)

	item := findMenuItem(items, "blow-job")
	require.NotNil(t, item)
	require.Equal(t, "Blow Job", item.Name)
	require.True(t, item.ABVPercent.Valid)
	require.True(t, item.ABVPercent.Decimal.Equal(decimal.RequireFromString("22.5")),
		"abv=%s", item.ABVPercent.Decimal)
	require.True(t, item.PriceSuggested.Valid)
	require.True(t, item.PriceSuggested.Decimal.Equal(decimal.RequireFromString("0.5")),
		"price=%s", item.PriceSuggested.Decimal)
	require.Equal(t, []string{"milk"}, item.Allergens)
	require.Empty(t, item.Lines, "menu rows carry no recipe")
}

func TestMenuFilters(t *testing.T) {
	resp := doRequest(t, "GET", "/cocktails?glass=Shot&tag=sweet&q=blow", "", nil, http.StatusOK)
	var items []dto.MenuCocktailDTO
	decodeJSON(t, resp, &items)
	require.NotNil(t, findMenuItem(items, "blow-job"))

	resp = doRequest(t, "GET", "/cocktails?glass=Coupe", "", nil, http.StatusOK)
	decodeJSON(t, resp, &items)
	require.Nil(t, findMenuItem(items, "blow-job"))

	resp = doRequest(t, "GET", "/cocktails?tag=bitter", "", nil, http.StatusOK)
	decodeJSON(t, resp, &items)
	require.Nil(t, findMenuItem(items, "blow-job"))

	resp = doRequest(t, "GET", "/cocktails?max_abv=20", "", nil, http.StatusOK)
	decodeJSON(t, resp, &items)
	require.Nil(t, findMenuItem(items, "blow-job"))

	resp = doRequest(t, "GET", "/cocktails?max_abv=25", "", nil, http.StatusOK)
	decodeJSON(t, resp, &items)
	require.NotNil(t, findMenuItem(items, "blow-job"))
}

func TestMenuRejectsBadMaxAbv(t *testing.T) {
	doRequest(t, "GET", "/cocktails?max_abv=strong", "", nil, http.StatusBadRequest)
}

func TestMenuDetail(t *testing.T) {
	resp := doRequest(t, "GET", "/cocktails/blow-job", "", nil, http.StatusOK)

	var item dto.MenuCocktailDTO
	decodeJSON(t, resp, &item)
	require.Equal(t, "Blow Job", item.Name)
	require.ElementsMatch(t, []string{"shot", "sweet"}, item.Tags)

	require.Len(t, item.Lines, 3)
	require.Equal(t, "Amaretto", item.Lines[0].IngredientName)
	require.Equal(t, "Irish Cream Liqueur", item.Lines[1].IngredientName)
	require.Equal(t, "Whipped Cream", item.Lines[2].IngredientName)
	require.True(t, item.Lines[2].IsOptional)
	require.True(t, item.Lines[0].AmountOz.Equal(decimal.RequireFromString("0.5")),
		"amount_oz=%s", item.Lines[0].AmountOz)
	for i, line := range item.Lines {
		require.Equal(t, int16(i+1), line.Seq)
	}
}

func TestMenuAllergensSkipOptionalLines(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	orgeat := createIngredient(t, admin, dto.CreateIngredientInput{
		Name:      "Orgeat Syrup",
		Type:      strPtr("syrup"),
		CostPerOz: decPtr("0.40"),
		Allergens: []string{"nuts"},
	})
	rum := createIngredient(t, admin, dto.CreateIngredientInput{
		Name:       "Aged Rum",
		Type:       strPtr("spirit"),
		ABVPercent: decPtr("40"),
		CostPerOz:  decPtr("0.90"),
	})

	created := createCocktail(t, admin, dto.CreateCocktailInput{
		Name:   "Quiet Harbor",
		Status: strPtr("published"),
		Lines: []dto.LineInput{
			{IngredientID: rum.ID, Amount: decimal.RequireFromString("2"), Unit: "oz"},
			{IngredientID: orgeat.ID, Amount: decimal.RequireFromString("0.5"), Unit: "oz", IsOptional: true},
		},
	})
	defer deleteCocktail(t, admin, created.ID)

	resp := doRequest(t, "GET", "/cocktails/"+created.Slug, "", nil, http.StatusOK)
	var item dto.MenuCocktailDTO
	decodeJSON(t, resp, &item)

	// "nuts" lives only on the optional garnish line, so the menu row
	// carries no allergens, serialized as an empty array.
	require.Equal(t, []string{}, item.Allergens)
}

func TestMenuDetailUnknownSlug(t *testing.T) {
	doRequest(t, "GET", "/cocktails/margarita", "", nil, http.StatusNotFound)
}

func TestMenuHidesDrafts(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	created := createCocktail(t, admin, dto.CreateCocktailInput{Name: "Chef's Draft"})
	defer deleteCocktail(t, admin, created.ID)

	require.Equal(t, "draft", created.Status)
	doRequest(t, "GET", "/cocktails/"+created.Slug, "", nil, http.StatusNotFound)

	resp := doRequest(t, "GET", "/cocktails", "", nil, http.StatusOK)
	var items []dto.MenuCocktailDTO
	decodeJSON(t, resp, &items)
	require.Nil(t, findMenuItem(items, created.Slug))
}
