package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/response"
	"github.com/adanilkinca/techcockbar/services"
)

type UploadHandler struct {
	svc *services.UploadService
}

func NewUploadHandler(svc *services.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// UploadMedia godoc
// @Summary Upload a cocktail or ingredient picture or video
// @Description Accepts jpeg, png, webp, gif, mp4 and webm. Returns the public URL to store in image_url or video_url.
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file"
// @Success 201 {object} response.UploadResponse
// @Failure 400 {object} response.ErrorResponse "Missing file or unsupported media type"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Failure 503 {object} response.ErrorResponse "Uploads not configured"
// @Router /admin/uploads [post]
func (h *UploadHandler) UploadMedia(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	objectName, url, err := h.svc.UploadMedia(c.Request.Context(), header)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.UploadResponse{URL: url, ObjectName: objectName})
}

// DeleteMedia godoc
// @Summary Delete an uploaded media object
// @Tags uploads
// @Security BearerAuth
// @Produce json
// @Param object path string true "Object name returned by the upload" example(4f9c6fd2-0a3e-4b1e-9d14-1763a3a2f9cd.jpg)
// @Success 200 {object} response.MessageResponse "Object deleted"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Failure 503 {object} response.ErrorResponse "Uploads not configured"
// @Router /admin/uploads/{object} [delete]
func (h *UploadHandler) DeleteMedia(c *gin.Context) {
	if err := h.svc.DeleteMedia(c.Request.Context(), c.Param("object")); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "object deleted"})
}

func (h *UploadHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUploadsDisabled):
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
