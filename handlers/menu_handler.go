package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/response"
	"github.com/adanilkinca/techcockbar/services"
	"github.com/adanilkinca/techcockbar/utils"
)

type MenuHandler struct {
	svc *services.MenuService
}

func NewMenuHandler(svc *services.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// ListMenu godoc
// @Summary List published cocktails for the public menu
// @Tags menu
// @Produce json
// @Param glass query string false "Filter by glass type" example(Shot)
// @Param tag query string false "Filter by tag name" example(sweet)
// @Param q query string false "Search over name and slug"
// @Param max_abv query number false "Maximum ABV percent" example(25)
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {array} dto.MenuCocktailDTO
// @Failure 400 {object} response.ErrorResponse "Invalid max_abv"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /cocktails [get]
func (h *MenuHandler) ListMenu(c *gin.Context) {
	params := repositories.PublicQueryParams{
		Glass: c.Query("glass"),
		Tag:   c.Query("tag"),
		Q:     c.Query("q"),
	}
	if raw := c.Query("max_abv"); raw != "" {
		maxABV, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid max_abv"})
			return
		}
		params.MaxABV = &maxABV
	}
	params.Limit, params.Offset = utils.ParsePageParams(c)

	menu, err := h.svc.ListMenu(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GetMenuItem godoc
// @Summary Get one published cocktail with its recipe
// @Tags menu
// @Produce json
// @Param slug path string true "Cocktail slug" example(blow-job)
// @Success 200 {object} dto.MenuCocktailDTO
// @Failure 404 {object} response.ErrorResponse "Cocktail not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /cocktails/{slug} [get]
func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	item, err := h.svc.GetMenuItem(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrCocktailNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "cocktail not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, item)
}
