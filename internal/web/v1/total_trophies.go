package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/battlegear/api-server/internal/core/domain"
)

// CRUD handlers for /total_trophies.

func (h *Handler) GetTotalTrophies(c *gin.Context) {
	totals, err := h.totalTrophies.FindMultiple(c.Request.Context(), findMultipleLimit)
	if err != nil {
		serverError(c, err, "List total trophies failed")
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *Handler) ViewTotalTrophies(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	total, err := h.totalTrophies.Find(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Find total trophies failed")
		return
	}
	if total == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, total)
}

func (h *Handler) CreateTotalTrophies(c *gin.Context) {
	var newTotal domain.NewTotalTrophies
	if err := c.ShouldBindJSON(&newTotal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	total, err := h.totalTrophies.Create(c.Request.Context(), newTotal)
	if err != nil {
		serverError(c, err, "Create total trophies failed")
		return
	}
	c.JSON(http.StatusCreated, total)
}

func (h *Handler) UpdateTotalTrophies(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var total domain.TotalTrophies
	if err := c.ShouldBindJSON(&total); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.totalTrophies.Update(c.Request.Context(), id, total)
	if err != nil {
		serverError(c, err, "Update total trophies failed")
		return
	}
	if updated == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteTotalTrophies(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.totalTrophies.Delete(c.Request.Context(), id); err != nil {
		serverError(c, err, "Delete total trophies failed")
		return
	}
	c.Status(http.StatusNoContent)
}
