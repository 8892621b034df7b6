package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/response"
	"github.com/adanilkinca/techcockbar/services"
)

type UnitHandler struct {
	svc *services.UnitService
}

func NewUnitHandler(svc *services.UnitService) *UnitHandler {
	return &UnitHandler{svc: svc}
}

// ListUnits godoc
// @Summary List measurement units and their ounce conversion factors
// @Tags units
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Unit
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
	units, err := h.svc.ListUnits()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, units)
}
