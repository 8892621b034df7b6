//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/adanilkinca/techcockbar/models"
)

func TestListUnits(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	resp := doRequest(t, "GET", "/admin/units", admin, nil, http.StatusOK)
	var units []models.Unit
	decodeJSON(t, resp, &units)
	require.Len(t, units, 10)

	byName := make(map[string]models.Unit, len(units))
	for _, u := range units {
		byName[u.Name] = u
	}

	oz, ok := byName["oz"]
	require.True(t, ok)
	require.False(t, oz.NonVolumetric)
	require.True(t, oz.ToOzFactor.Valid)
	require.True(t, oz.ToOzFactor.Decimal.Equal(decimal.NewFromInt(1)))

	ml, ok := byName["ml"]
	require.True(t, ok)
	require.True(t, ml.ToOzFactor.Decimal.Equal(decimal.RequireFromString("0.033814")))

	wedge, ok := byName["wedge"]
	require.True(t, ok)
	require.True(t, wedge.NonVolumetric)
	require.False(t, wedge.ToOzFactor.Valid)
	require.True(t, wedge.OzEquivalent.Valid)
	require.True(t, wedge.OzEquivalent.Decimal.IsZero())
}
