package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/response"
	"github.com/adanilkinca/techcockbar/services"
	"github.com/adanilkinca/techcockbar/utils"
)

type IngredientHandler struct {
	svc *services.IngredientService
}

func NewIngredientHandler(svc *services.IngredientService) *IngredientHandler {
	return &IngredientHandler{svc: svc}
}

// ListIngredients godoc
// @Summary List ingredients
// @Tags ingredients
// @Security BearerAuth
// @Produce json
// @Param type query string false "Filter by ingredient type" example(liqueur)
// @Param q query string false "Search over name"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {array} dto.IngredientDTO
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/ingredients [get]
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	params := repositories.IngredientQueryParams{Q: c.Query("q")}
	if t := c.Query("type"); t != "" {
		params.Type = &t
	}
	params.Limit, params.Offset = utils.ParsePageParams(c)

	ingredients, err := h.svc.ListIngredients(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// GetIngredient godoc
// @Summary Get one ingredient with its allergens
// @Tags ingredients
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Ingredient ID"
// @Success 200 {object} dto.IngredientDTO
// @Failure 400 {object} response.ErrorResponse "Invalid ingredient id"
// @Failure 404 {object} response.ErrorResponse "Ingredient not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/ingredients/{id} [get]
func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid ingredient id"})
		return
	}
	ingredient, err := h.svc.GetIngredient(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// CreateIngredient godoc
// @Summary Create an ingredient
// @Tags ingredients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateIngredientInput true "Ingredient fields and allergens"
// @Success 201 {object} dto.IngredientDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Name already in use"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/ingredients [post]
func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var input dto.CreateIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	ingredient, err := h.svc.CreateIngredient(c, input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Tags ingredients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Ingredient ID"
// @Param input body dto.UpdateIngredientInput true "Fields to change"
// @Success 200 {object} dto.IngredientDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Ingredient not found"
// @Failure 409 {object} response.ErrorResponse "Name already in use"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/ingredients/{id} [put]
func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid ingredient id"})
		return
	}
	var input dto.UpdateIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	ingredient, err := h.svc.UpdateIngredient(c, id, input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Description Refused while any cocktail recipe still uses the ingredient.
// @Tags ingredients
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Ingredient ID"
// @Success 200 {object} response.MessageResponse "Ingredient deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid ingredient id"
// @Failure 404 {object} response.ErrorResponse "Ingredient not found"
// @Failure 409 {object} response.ErrorResponse "Ingredient used by recipes"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/ingredients/{id} [delete]
func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid ingredient id"})
		return
	}

	if err := h.svc.DeleteIngredient(c, id); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "ingredient deleted"})
}

func (h *IngredientHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrIngredientNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "ingredient not found"})
	case errors.Is(err, services.ErrIngredientNameTaken), errors.Is(err, services.ErrIngredientInUse):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
