package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/battlegear/api-server/internal/core/domain"
	logicv1 "github.com/battlegear/api-server/internal/logic/v1"
	"github.com/battlegear/api-server/middleware"
)

// Login handles POST /login. On success the response body is
// {"token": "<128-char token>"}; on any credential failure the body is the
// same generic 401 whether the username or the password was wrong.
func (h *Handler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.login", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var credentials domain.Credentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	response, err := h.auth.Login(ctx, credentials)
	if err != nil {
		span.RecordError(err)

		switch {
		case errors.Is(err, logicv1.ErrInvalidCredentials),
			errors.Is(err, logicv1.ErrUserNotFound):
			// Identical response for both; username enumeration is not
			// worth a better error message.
			logger.Warn().Err(err).Msg("Login rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			logger.Error().Err(err).Msg("Login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	logger.Info().Str("username", credentials.Username).Msg("Login successful")
	c.JSON(http.StatusOK, response)
}
