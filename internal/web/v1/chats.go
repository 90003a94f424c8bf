package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/battlegear/api-server/internal/core/domain"
)

// CRUD handlers for /chats.

func (h *Handler) GetChats(c *gin.Context) {
	chats, err := h.chats.FindMultiple(c.Request.Context(), findMultipleLimit)
	if err != nil {
		serverError(c, err, "List chats failed")
		return
	}
	c.JSON(http.StatusOK, chats)
}

func (h *Handler) ViewChat(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	chat, err := h.chats.Find(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Find chat failed")
		return
	}
	if chat == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, chat)
}

func (h *Handler) CreateChat(c *gin.Context) {
	var newChat domain.NewChat
	if err := c.ShouldBindJSON(&newChat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chat, err := h.chats.Create(c.Request.Context(), newChat)
	if err != nil {
		serverError(c, err, "Create chat failed")
		return
	}
	c.JSON(http.StatusCreated, chat)
}

func (h *Handler) UpdateChat(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var chat domain.Chat
	if err := c.ShouldBindJSON(&chat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.chats.Update(c.Request.Context(), id, chat)
	if err != nil {
		serverError(c, err, "Update chat failed")
		return
	}
	if updated == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteChat(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.chats.Delete(c.Request.Context(), id); err != nil {
		serverError(c, err, "Delete chat failed")
		return
	}
	c.Status(http.StatusNoContent)
}
