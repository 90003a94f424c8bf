package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/battlegear/api-server/internal/core/domain"
)

// CRUD handlers for /trophies.

func (h *Handler) GetTrophies(c *gin.Context) {
	trophies, err := h.trophies.FindMultiple(c.Request.Context(), findMultipleLimit)
	if err != nil {
		serverError(c, err, "List trophies failed")
		return
	}
	c.JSON(http.StatusOK, trophies)
}

func (h *Handler) ViewTrophy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	trophy, err := h.trophies.Find(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Find trophy failed")
		return
	}
	if trophy == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, trophy)
}

func (h *Handler) CreateTrophy(c *gin.Context) {
	var newTrophy domain.NewTrophy
	if err := c.ShouldBindJSON(&newTrophy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trophy, err := h.trophies.Create(c.Request.Context(), newTrophy)
	if err != nil {
		serverError(c, err, "Create trophy failed")
		return
	}
	c.JSON(http.StatusCreated, trophy)
}

func (h *Handler) UpdateTrophy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var trophy domain.Trophy
	if err := c.ShouldBindJSON(&trophy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.trophies.Update(c.Request.Context(), id, trophy)
	if err != nil {
		serverError(c, err, "Update trophy failed")
		return
	}
	if updated == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteTrophy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.trophies.Delete(c.Request.Context(), id); err != nil {
		serverError(c, err, "Delete trophy failed")
		return
	}
	c.Status(http.StatusNoContent)
}
