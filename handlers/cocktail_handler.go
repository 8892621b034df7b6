package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/response"
	"github.com/adanilkinca/techcockbar/services"
	"github.com/adanilkinca/techcockbar/utils"
)

type CocktailHandler struct {
	svc *services.CocktailService
}

func NewCocktailHandler(svc *services.CocktailService) *CocktailHandler {
	return &CocktailHandler{svc: svc}
}

// ListCocktails godoc
// @Summary List cocktails for the admin console
// @Tags cocktails
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status" Enums(draft, published, archived)
// @Param q query string false "Search over name and slug"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {array} dto.CocktailAdminRow
// @Failure 400 {object} response.ErrorResponse "Invalid status"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/cocktails [get]
func (h *CocktailHandler) ListCocktails(c *gin.Context) {
	params := repositories.CocktailQueryParams{Q: c.Query("q")}
	if raw := c.Query("status"); raw != "" {
		status := models.CocktailStatus(raw)
		switch status {
		case models.CocktailStatusDraft, models.CocktailStatusPublished, models.CocktailStatusArchived:
			params.Status = &status
		default:
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid status"})
			return
		}
	}
	params.Limit, params.Offset = utils.ParsePageParams(c)

	rows, err := h.svc.ListCocktails(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetCocktail godoc
// @Summary Get the full edit view of one cocktail
// @Tags cocktails
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Cocktail ID"
// @Success 200 {object} dto.CocktailDetailDTO
// @Failure 400 {object} response.ErrorResponse "Invalid cocktail id"
// @Failure 404 {object} response.ErrorResponse "Cocktail not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/cocktails/{id} [get]
func (h *CocktailHandler) GetCocktail(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid cocktail id"})
		return
	}
	detail, err := h.svc.GetCocktail(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateCocktail godoc
// @Summary Create a cocktail
// @Tags cocktails
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateCocktailInput true "Cocktail fields, tags and ingredient lines"
// @Success 201 {object} dto.CocktailDetailDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input or unknown ingredient"
// @Failure 409 {object} response.ErrorResponse "Slug already in use"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/cocktails [post]
func (h *CocktailHandler) CreateCocktail(c *gin.Context) {
	var input dto.CreateCocktailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	detail, err := h.svc.CreateCocktail(c, input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// UpdateCocktail godoc
// @Summary Update a cocktail's fields and tags
// @Tags cocktails
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Cocktail ID"
// @Param input body dto.UpdateCocktailInput true "Fields to change"
// @Success 200 {object} dto.CocktailDetailDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Cocktail not found"
// @Failure 409 {object} response.ErrorResponse "Slug already in use"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/cocktails/{id} [put]
func (h *CocktailHandler) UpdateCocktail(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid cocktail id"})
		return
	}
	var input dto.UpdateCocktailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	detail, err := h.svc.UpdateCocktail(c, id, input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateStatus godoc
// @Summary Move a cocktail between draft, published and archived
// @Tags cocktails
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Cocktail ID"
// @Param input body dto.UpdateCocktailStatusInput true "Target status"
// @Success 200 {object} dto.CocktailDetailDTO
// @Failure 400 {object} response.ErrorResponse "Invalid status"
// @Failure 404 {object} response.ErrorResponse "Cocktail not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/cocktails/{id}/status [post]
func (h *CocktailHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid cocktail id"})
		return
	}
	var input dto.UpdateCocktailStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	detail, err := h.svc.UpdateStatus(c, id, models.CocktailStatus(input.Status))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ReplaceIngredients godoc
// @Summary Replace a cocktail's ingredient lines
// @Description Swaps the whole recipe in one transaction. Line order becomes the sequence; ounce amounts and prices are recomputed.
// @Tags cocktails
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Cocktail ID"
// @Param input body dto.ReplaceLinesInput true "New ingredient lines"
// @Success 200 {object} dto.CocktailDetailDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input or unknown ingredient"
// @Failure 404 {object} response.ErrorResponse "Cocktail not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/cocktails/{id}/ingredients [put]
func (h *CocktailHandler) ReplaceIngredients(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid cocktail id"})
		return
	}
	var input dto.ReplaceLinesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	detail, err := h.svc.ReplaceIngredients(c, id, input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteCocktail godoc
// @Summary Delete a cocktail
// @Tags cocktails
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Cocktail ID"
// @Success 200 {object} response.MessageResponse "Cocktail deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid cocktail id"
// @Failure 404 {object} response.ErrorResponse "Cocktail not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/cocktails/{id} [delete]
func (h *CocktailHandler) DeleteCocktail(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid cocktail id"})
		return
	}

	if err := h.svc.DeleteCocktail(c, id); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "cocktail deleted"})
}

func (h *CocktailHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCocktailNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "cocktail not found"})
	case errors.Is(err, services.ErrSlugTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrUnknownIngredient):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrUnknownGlassType):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
