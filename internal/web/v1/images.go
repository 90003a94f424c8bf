package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/battlegear/api-server/internal/core/domain"
)

// CRUD handlers for /images.

func (h *Handler) GetImages(c *gin.Context) {
	images, err := h.images.FindMultiple(c.Request.Context(), findMultipleLimit)
	if err != nil {
		serverError(c, err, "List images failed")
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *Handler) ViewImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	image, err := h.images.Find(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Find image failed")
		return
	}
	if image == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *Handler) CreateImage(c *gin.Context) {
	var newImage domain.NewImage
	if err := c.ShouldBindJSON(&newImage); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	image, err := h.images.Create(c.Request.Context(), newImage)
	if err != nil {
		serverError(c, err, "Create image failed")
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *Handler) UpdateImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var image domain.Image
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.images.Update(c.Request.Context(), id, image)
	if err != nil {
		serverError(c, err, "Update image failed")
		return
	}
	if updated == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.images.Delete(c.Request.Context(), id); err != nil {
		serverError(c, err, "Delete image failed")
		return
	}
	c.Status(http.StatusNoContent)
}
