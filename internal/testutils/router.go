package testutils

import (
	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/routes"
	"github.com/adanilkinca/techcockbar/websocket"
)

// SetupRouter builds the full route table in test mode. Pass a nil hub when
// the test does not exercise the menu feed.
func SetupRouter(hub *websocket.Hub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, hub)
	return r
}
