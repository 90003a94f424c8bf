package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/battlegear/api-server/internal/core/domain"
	logicv1 "github.com/battlegear/api-server/internal/logic/v1"
)

// bearerScheme is the only accepted Authorization scheme, matched
// case-sensitively.
const bearerScheme = "Bearer"

// currentUserKey is the gin context key holding the authenticated user.
const currentUserKey = "current_user"

// ParseBearerToken extracts the session token from an Authorization header
// value. The header must be exactly two whitespace-separated fields with
// the literal scheme first; anything else reads as no credentials at all.
func ParseBearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != bearerScheme {
		return "", false
	}
	return fields[1], true
}

// RequireAuth is the request guard: it resolves the bearer token to a user
// and attaches it to the context, or aborts the request. Every
// authentication failure - missing header, bad scheme, unknown or expired
// token, session pointing at a deleted user - produces the identical 401
// so probing clients learn nothing; only infrastructure failures differ,
// as a 500. The guard performs one session read and at most one user read,
// and never writes (no sliding expiry).
func RequireAuth(auth *logicv1.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zerolog.Ctx(c.Request.Context())

		token, ok := ParseBearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c)
			return
		}

		user, err := auth.UserFromToken(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, logicv1.ErrSessionNotFound),
				errors.Is(err, logicv1.ErrUserNotFound):
				logger.Debug().Err(err).Msg("Request rejected")
				unauthorized(c)
			default:
				logger.Error().Err(err).Msg("Session lookup failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "Internal server error"})
			}
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// CurrentUser returns the authenticated user attached by RequireAuth.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
