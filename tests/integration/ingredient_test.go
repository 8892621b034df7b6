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

func TestIngredientCRUD(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	created := createIngredient(t, admin, dto.CreateIngredientInput{
		Name:        "Orgeat",
		Type:        strPtr("syrup"),
		CostPerOz:   decPtr("0.45"),
		Allergens:   []string{"tree nuts"},
		Notes:       strPtr("Almond syrup, keep refrigerated."),
		IsHousemade: true,
	})
	require.Equal(t, []string{"tree nuts"}, created.Allergens)
	require.True(t, created.IsHousemade)

	resp := doRequest(t, "GET", fmt.Sprintf("/admin/ingredients/%d", created.ID), admin, nil, http.StatusOK)
	var fetched dto.IngredientDTO
	decodeJSON(t, resp, &fetched)
	require.Equal(t, "Orgeat", fetched.Name)
	require.True(t, fetched.CostPerOz.Equal(decimal.RequireFromString("0.45")))

	resp = doRequest(t, "PUT", fmt.Sprintf("/admin/ingredients/%d", created.ID), admin, dto.UpdateIngredientInput{
		CostPerOz: decPtr("0.55"),
		Allergens: []string{"tree nuts", "sulfites"},
	}, http.StatusOK)
	var updated dto.IngredientDTO
	decodeJSON(t, resp, &updated)
	require.True(t, updated.CostPerOz.Equal(decimal.RequireFromString("0.55")))
	require.ElementsMatch(t, []string{"tree nuts", "sulfites"}, updated.Allergens)

	doRequest(t, "DELETE", fmt.Sprintf("/admin/ingredients/%d", created.ID), admin, nil, http.StatusOK)
	doRequest(t, "GET", fmt.Sprintf("/admin/ingredients/%d", created.ID), admin, nil, http.StatusNotFound)
}

func TestIngredientListFilters(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	resp := doRequest(t, "GET", "/admin/ingredients?type=liqueur", admin, nil, http.StatusOK)
	var items []dto.IngredientDTO
	decodeJSON(t, resp, &items)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	require.Contains(t, names, "Amaretto")
	require.Contains(t, names, "Irish Cream Liqueur")
	require.NotContains(t, names, "Whipped Cream")

	resp = doRequest(t, "GET", "/admin/ingredients?q=irish", admin, nil, http.StatusOK)
	decodeJSON(t, resp, &items)
	require.Len(t, items, 1)
	require.Equal(t, "Irish Cream Liqueur", items[0].Name)
	require.Equal(t, []string{"milk"}, items[0].Allergens)
}

func TestIngredientNameConflict(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	resp := doRequest(t, "POST", "/admin/ingredients", admin, dto.CreateIngredientInput{
		Name: "Amaretto",
	}, http.StatusConflict)
	require.Contains(t, resp.Body.String(), "ingredient name already in use")

	created := createIngredient(t, admin, dto.CreateIngredientInput{Name: "Falernum"})
	resp = doRequest(t, "PUT", fmt.Sprintf("/admin/ingredients/%d", created.ID), admin, dto.UpdateIngredientInput{
		Name: strPtr("Amaretto"),
	}, http.StatusConflict)
	require.Contains(t, resp.Body.String(), "ingredient name already in use")

	doRequest(t, "DELETE", fmt.Sprintf("/admin/ingredients/%d", created.ID), admin, nil, http.StatusOK)
}

func TestIngredientDeleteRefusedWhileInUse(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	mezcal := createIngredient(t, admin, dto.CreateIngredientInput{
		Name:       "Joven Mezcal",
		Type:       strPtr("spirit"),
		ABVPercent: decPtr("43"),
	})
	cocktail := createCocktail(t, admin, dto.CreateCocktailInput{
		Name: "Smoke Ring",
		Lines: []dto.LineInput{
			{IngredientID: mezcal.ID, Amount: decimal.RequireFromString("2"), Unit: "oz"},
		},
	})

	resp := doRequest(t, "DELETE", fmt.Sprintf("/admin/ingredients/%d", mezcal.ID), admin, nil, http.StatusConflict)
	require.Contains(t, resp.Body.String(), "used by cocktail recipes")

	// Once the recipe is gone the ingredient can be removed.
	deleteCocktail(t, admin, cocktail.ID)
	doRequest(t, "DELETE", fmt.Sprintf("/admin/ingredients/%d", mezcal.ID), admin, nil, http.StatusOK)
}

func TestIngredientNotFound(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	doRequest(t, "GET", "/admin/ingredients/999999", admin, nil, http.StatusNotFound)
	doRequest(t, "DELETE", "/admin/ingredients/999999", admin, nil, http.StatusNotFound)
}
