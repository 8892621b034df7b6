package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/response"
	"github.com/adanilkinca/techcockbar/services"
)

type SettingsHandler struct {
	svc *services.SettingsService
}

func NewSettingsHandler(svc *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GetSettings godoc
// @Summary Get the pricing settings
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.PricingSettings
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.svc.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Update the pricing settings
// @Description Changes apply to prices computed from then on; stored price_auto values refresh on the next save of each cocktail.
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.UpdateSettingsInput true "Fields to change"
// @Success 200 {object} models.PricingSettings
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var input dto.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	settings, err := h.svc.UpdateSettings(c, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
