// Package v1 exposes the HTTP API: the login endpoint, the request guard
// and the CRUD endpoints for every game-profile entity.
package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/battlegear/api-server/internal/core/domain"
	logicv1 "github.com/battlegear/api-server/internal/logic/v1"
)

// findMultipleLimit caps list endpoints.
const findMultipleLimit = 100

// Handler groups the HTTP handlers for the API.
// Dependencies are injected via the constructor - no global state.
type Handler struct {
	auth          *logicv1.AuthService
	users         domain.UserRepository
	roles         domain.RoleRepository
	hasher        logicv1.PasswordHasher
	images        domain.ImageRepository
	trophies      domain.TrophyRepository
	totalTrophies domain.TotalTrophiesRepository
	userLevels    domain.UserLevelRepository
	chats         domain.ChatRepository
	currencies    domain.CurrencyRepository
	friendships   domain.FriendshipRepository
}

// NewHandler creates a Handler with the given services and repositories.
func NewHandler(
	auth *logicv1.AuthService,
	users domain.UserRepository,
	roles domain.RoleRepository,
	hasher logicv1.PasswordHasher,
	images domain.ImageRepository,
	trophies domain.TrophyRepository,
	totalTrophies domain.TotalTrophiesRepository,
	userLevels domain.UserLevelRepository,
	chats domain.ChatRepository,
	currencies domain.CurrencyRepository,
	friendships domain.FriendshipRepository,
) *Handler {
	return &Handler{
		auth:          auth,
		users:         users,
		roles:         roles,
		hasher:        hasher,
		images:        images,
		trophies:      trophies,
		totalTrophies: totalTrophies,
		userLevels:    userLevels,
		chats:         chats,
		currencies:    currencies,
		friendships:   friendships,
	}
}

// RegisterRoutes registers all API routes on the given engine.
// Login, user creation and the existence probes are public; everything
// else sits behind the session guard.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)
	r.POST("/users", h.CreateUser)
	r.GET("/users/username_exists/:username", h.UsernameExists)
	r.GET("/users/email_exists/:email", h.EmailExists)

	authed := r.Group("/", RequireAuth(h.auth))

	authed.GET("/users", h.GetUsers)
	authed.GET("/users/:id", h.ViewUser)
	authed.GET("/users/:id/roles", h.UserRoles)
	authed.PUT("/users/:id", h.UpdateUser)
	authed.DELETE("/users/:id", h.DeleteUser)

	authed.GET("/images", h.GetImages)
	authed.GET("/images/:id", h.ViewImage)
	authed.POST("/images", h.CreateImage)
	authed.PUT("/images/:id", h.UpdateImage)
	authed.DELETE("/images/:id", h.DeleteImage)

	authed.GET("/trophies", h.GetTrophies)
	authed.GET("/trophies/:id", h.ViewTrophy)
	authed.POST("/trophies", h.CreateTrophy)
	authed.PUT("/trophies/:id", h.UpdateTrophy)
	authed.DELETE("/trophies/:id", h.DeleteTrophy)

	authed.GET("/total_trophies", h.GetTotalTrophies)
	authed.GET("/total_trophies/:id", h.ViewTotalTrophies)
	authed.POST("/total_trophies", h.CreateTotalTrophies)
	authed.PUT("/total_trophies/:id", h.UpdateTotalTrophies)
	authed.DELETE("/total_trophies/:id", h.DeleteTotalTrophies)

	authed.GET("/user_levels", h.GetUserLevels)
	authed.GET("/user_levels/:id", h.ViewUserLevel)
	authed.POST("/user_levels", h.CreateUserLevel)
	authed.PUT("/user_levels/:id", h.UpdateUserLevel)
	authed.DELETE("/user_levels/:id", h.DeleteUserLevel)

	authed.GET("/chats", h.GetChats)
	authed.GET("/chats/:id", h.ViewChat)
	authed.POST("/chats", h.CreateChat)
	authed.PUT("/chats/:id", h.UpdateChat)
	authed.DELETE("/chats/:id", h.DeleteChat)

	authed.GET("/currencies", h.GetCurrencies)
	authed.GET("/currencies/:id", h.ViewCurrency)
	authed.POST("/currencies", h.CreateCurrency)
	authed.PUT("/currencies/:id", h.UpdateCurrency)
	authed.DELETE("/currencies/:id", h.DeleteCurrency)

	authed.GET("/friendships", h.GetFriendships)
	authed.GET("/friendships/:id", h.ViewFriendship)
	authed.POST("/friendships", h.CreateFriendship)
	authed.PUT("/friendships/:id", h.UpdateFriendship)
	authed.DELETE("/friendships/:id", h.DeleteFriendship)
}

// pathID parses the :id route parameter; on failure it writes a 400 and
// returns false.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// serverError logs the failure with detail and returns an opaque 500.
// Internals never reach the client.
func serverError(c *gin.Context, err error, msg string) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
