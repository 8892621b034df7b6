package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/response"
	"github.com/adanilkinca/techcockbar/services"
	"github.com/adanilkinca/techcockbar/utils"
)

type TagHandler struct {
	svc *services.TagService
}

func NewTagHandler(svc *services.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// ListTags godoc
// @Summary List all tags
// @Tags tags
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Tag
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.svc.ListTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag godoc
// @Summary Create a tag
// @Tags tags
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.TagInput true "Tag name"
// @Success 201 {object} models.Tag
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Name already in use"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var input dto.TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	tag, err := h.svc.CreateTag(c, input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// UpdateTag godoc
// @Summary Rename a tag
// @Tags tags
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Tag ID"
// @Param input body dto.TagInput true "New tag name"
// @Success 200 {object} models.Tag
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Tag not found"
// @Failure 409 {object} response.ErrorResponse "Name already in use"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/tags/{id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid tag id"})
		return
	}
	var input dto.TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	tag, err := h.svc.UpdateTag(c, id, input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTag godoc
// @Summary Delete a tag
// @Tags tags
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Tag ID"
// @Success 200 {object} response.MessageResponse "Tag deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid tag id"
// @Failure 404 {object} response.ErrorResponse "Tag not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid tag id"})
		return
	}

	if err := h.svc.DeleteTag(c, id); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "tag deleted"})
}

func (h *TagHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTagNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "tag not found"})
	case errors.Is(err, services.ErrTagNameTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
