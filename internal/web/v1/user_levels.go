package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/battlegear/api-server/internal/core/domain"
)

// CRUD handlers for /user_levels.

func (h *Handler) GetUserLevels(c *gin.Context) {
	levels, err := h.userLevels.FindMultiple(c.Request.Context(), findMultipleLimit)
	if err != nil {
		serverError(c, err, "List user levels failed")
		return
	}
	c.JSON(http.StatusOK, levels)
}

func (h *Handler) ViewUserLevel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	level, err := h.userLevels.Find(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Find user level failed")
		return
	}
	if level == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, level)
}

func (h *Handler) CreateUserLevel(c *gin.Context) {
	var newLevel domain.NewUserLevel
	if err := c.ShouldBindJSON(&newLevel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	level, err := h.userLevels.Create(c.Request.Context(), newLevel)
	if err != nil {
		serverError(c, err, "Create user level failed")
		return
	}
	c.JSON(http.StatusCreated, level)
}

func (h *Handler) UpdateUserLevel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var level domain.UserLevel
	if err := c.ShouldBindJSON(&level); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.userLevels.Update(c.Request.Context(), id, level)
	if err != nil {
		serverError(c, err, "Update user level failed")
		return
	}
	if updated == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteUserLevel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.userLevels.Delete(c.Request.Context(), id); err != nil {
		serverError(c, err, "Delete user level failed")
		return
	}
	c.Status(http.StatusNoContent)
}
