package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/battlegear/api-server/internal/core/domain"
)

// CRUD handlers for /friendships.

func (h *Handler) GetFriendships(c *gin.Context) {
	friendships, err := h.friendships.FindMultiple(c.Request.Context(), findMultipleLimit)
	if err != nil {
		serverError(c, err, "List friendships failed")
		return
	}
	c.JSON(http.StatusOK, friendships)
}

func (h *Handler) ViewFriendship(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	friendship, err := h.friendships.Find(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Find friendship failed")
		return
	}
	if friendship == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, friendship)
}

func (h *Handler) CreateFriendship(c *gin.Context) {
	var newFriendship domain.NewFriendship
	if err := c.ShouldBindJSON(&newFriendship); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	friendship, err := h.friendships.Create(c.Request.Context(), newFriendship)
	if err != nil {
		serverError(c, err, "Create friendship failed")
		return
	}
	c.JSON(http.StatusCreated, friendship)
}

func (h *Handler) UpdateFriendship(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var friendship domain.Friendship
	if err := c.ShouldBindJSON(&friendship); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.friendships.Update(c.Request.Context(), id, friendship)
	if err != nil {
		serverError(c, err, "Update friendship failed")
		return
	}
	if updated == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteFriendship(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.friendships.Delete(c.Request.Context(), id); err != nil {
		serverError(c, err, "Delete friendship failed")
		return
	}
	c.Status(http.StatusNoContent)
}
