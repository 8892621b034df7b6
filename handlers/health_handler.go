package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/db"
)

// Healthz godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "ok"
// @Failure 503 {object} map[string]string "database unreachable"
// @Router /healthz [get]
func Healthz(c *gin.Context) {
	if err := db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
