package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/response"
	"github.com/adanilkinca/techcockbar/websocket"
)

type MenuFeedHandler struct {
	hub *websocket.Hub
}

func NewMenuFeedHandler(hub *websocket.Hub) *MenuFeedHandler {
	return &MenuFeedHandler{hub: hub}
}

// Subscribe godoc
// @Summary Subscribe to live menu updates
// @Description Upgrades to a websocket. Each publish, archive or edit of a published cocktail is pushed as {"event", "slug", "cocktail"}.
// @Tags menu
// @Success 101 {string} string "Switching Protocols"
// @Failure 503 {object} response.ErrorResponse "Feed not running"
// @Router /ws/menu [get]
func (h *MenuFeedHandler) Subscribe(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "menu feed not running"})
		return
	}
	h.hub.ServeWS(c.Writer, c.Request)
}
