package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/battlegear/api-server/internal/core/domain"
)

// CRUD handlers for /currencies.

func (h *Handler) GetCurrencies(c *gin.Context) {
	currencies, err := h.currencies.FindMultiple(c.Request.Context(), findMultipleLimit)
	if err != nil {
		serverError(c, err, "List currencies failed")
		return
	}
	c.JSON(http.StatusOK, currencies)
}

func (h *Handler) ViewCurrency(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	currency, err := h.currencies.Find(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Find currency failed")
		return
	}
	if currency == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, currency)
}

func (h *Handler) CreateCurrency(c *gin.Context) {
	var newCurrency domain.NewCurrency
	if err := c.ShouldBindJSON(&newCurrency); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	currency, err := h.currencies.Create(c.Request.Context(), newCurrency)
	if err != nil {
		serverError(c, err, "Create currency failed")
		return
	}
	c.JSON(http.StatusCreated, currency)
}

func (h *Handler) UpdateCurrency(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var currency domain.Currency
	if err := c.ShouldBindJSON(&currency); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.currencies.Update(c.Request.Context(), id, currency)
	if err != nil {
		serverError(c, err, "Update currency failed")
		return
	}
	if updated == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteCurrency(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.currencies.Delete(c.Request.Context(), id); err != nil {
		serverError(c, err, "Delete currency failed")
		return
	}
	c.Status(http.StatusNoContent)
}
