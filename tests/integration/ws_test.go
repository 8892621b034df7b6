//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/adanilkinca/techcockbar/dto"
)

func dialMenuFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/menu"

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	// registration runs after the handshake, wait for the hub to see us
	require.Eventually(t, func() bool {
		return hub.ClientCount() > 0
	}, 3*time.Second, 10*time.Millisecond)

	return conn
}

func readMenuEvent(t *testing.T, conn *websocket.Conn) dto.MenuEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))

	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var evt dto.MenuEvent
	require.NoError(t, json.Unmarshal(raw, &evt))
	return evt
}

func TestMenuFeedLifecycle(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	srv := httptest.NewServer(router)
	defer srv.Close()
	conn := dialMenuFeed(t, srv)
	defer conn.Close()

	spirit := createIngredient(t, admin, dto.CreateIngredientInput{
		Name:       "Feed Gin",
		Type:       strPtr("spirit"),
		ABVPercent: decPtr("43"),
		CostPerOz:  decPtr("0.90"),
	})
	created := createCocktail(t, admin, dto.CreateCocktailInput{
		Name:          "Signal Fizz",
		GlassType:     strPtr("Highball"),
		TimeToMakeSec: intPtr(60),
		Lines: []dto.LineInput{
			{IngredientID: spirit.ID, Amount: decimal.RequireFromString("1.5"), Unit: "oz"},
		},
	})
	defer deleteCocktail(t, admin, created.ID)
	statusPath := fmt.Sprintf("/admin/cocktails/%d/status", created.ID)

	// drafts are invisible, publishing is the first frame
	doRequest(t, "POST", statusPath, admin,
		dto.UpdateCocktailStatusInput{Status: "published"}, http.StatusOK)

	evt := readMenuEvent(t, conn)
	require.Equal(t, "published", evt.Event)
	require.Equal(t, created.Slug, evt.Slug)
	require.NotNil(t, evt.Cocktail)
	require.Equal(t, "Signal Fizz", evt.Cocktail.Name)
	require.True(t, evt.Cocktail.PriceSuggested.Valid)

	// edits to a published cocktail push the refreshed card
	doRequest(t, "PUT", fmt.Sprintf("/admin/cocktails/%d", created.ID), admin,
		dto.UpdateCocktailInput{DescriptionShort: strPtr("Bright and fizzy.")}, http.StatusOK)

	evt = readMenuEvent(t, conn)
	require.Equal(t, "updated", evt.Event)
	require.Equal(t, created.Slug, evt.Slug)
	require.NotNil(t, evt.Cocktail)
	require.Equal(t, "Bright and fizzy.", *evt.Cocktail.DescriptionShort)

	// archiving only carries the slug
	doRequest(t, "POST", statusPath, admin,
		dto.UpdateCocktailStatusInput{Status: "archived"}, http.StatusOK)

	evt = readMenuEvent(t, conn)
	require.Equal(t, "archived", evt.Event)
	require.Equal(t, created.Slug, evt.Slug)
	require.Nil(t, evt.Cocktail)
}

func TestMenuFeedDraftsStaySilent(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	srv := httptest.NewServer(router)
	defer srv.Close()
	conn := dialMenuFeed(t, srv)
	defer conn.Close()

	created := createCocktail(t, admin, dto.CreateCocktailInput{Name: "Quiet Draft"})
	doRequest(t, "PUT", fmt.Sprintf("/admin/cocktails/%d", created.ID), admin,
		dto.UpdateCocktailInput{DescriptionShort: strPtr("Still unlisted.")}, http.StatusOK)
	deleteCocktail(t, admin, created.ID)

	// none of that touched the published menu, so no frame may arrive
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(500*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "timeout") || websocket.IsUnexpectedCloseError(err))
}
