package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/battlegear/api-server/internal/core/domain"
)

// createUserRequest is the body of POST /users. The client sends a
// plaintext password; the server hashes it before anything is stored.
type createUserRequest struct {
	Username    string       `json:"username" binding:"required"`
	Email       string       `json:"email" binding:"required"`
	Password    string       `json:"password" binding:"required"`
	FullName    *string      `json:"full_name"`
	Country     *string      `json:"country"`
	DateOfBirth *domain.Date `json:"date_of_birth"`
	Roles       []string     `json:"roles"`
}

// GetUsers handles GET /users.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.users.FindMultiple(c.Request.Context(), findMultipleLimit)
	if err != nil {
		serverError(c, err, "List users failed")
		return
	}
	c.JSON(http.StatusOK, users)
}

// ViewUser handles GET /users/:id.
func (h *Handler) ViewUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Find user failed")
		return
	}
	if user == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passwordHash, err := h.hasher.Hash(req.Password)
	if err != nil {
		serverError(c, err, "Hash password failed")
		return
	}

	newUser := domain.NewUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Country:      req.Country,
		DateOfBirth:  req.DateOfBirth,
	}

	user, err := h.users.Create(c.Request.Context(), newUser, req.Roles)
	if err != nil {
		serverError(c, err, "Create user failed")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /users/:id.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.users.Update(c.Request.Context(), id, user)
	if err != nil {
		serverError(c, err, "Update user failed")
		return
	}
	if updated == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUser handles DELETE /users/:id.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		serverError(c, err, "Delete user failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// UserRoles handles GET /users/:id/roles.
func (h *Handler) UserRoles(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Find user failed")
		return
	}
	if user == nil {
		notFound(c)
		return
	}
	roles, err := h.roles.FindByUser(c.Request.Context(), id)
	if err != nil {
		serverError(c, err, "Find roles failed")
		return
	}
	c.JSON(http.StatusOK, roles)
}

// UsernameExists handles GET /users/username_exists/:username.
func (h *Handler) UsernameExists(c *gin.Context) {
	exists, err := h.users.UsernameExists(c.Request.Context(), c.Param("username"))
	if err != nil {
		serverError(c, err, "Username exists check failed")
		return
	}
	c.JSON(http.StatusOK, exists)
}

// EmailExists handles GET /users/email_exists/:email.
func (h *Handler) EmailExists(c *gin.Context) {
	exists, err := h.users.EmailExists(c.Request.Context(), c.Param("email"))
	if err != nil {
		serverError(c, err, "Email exists check failed")
		return
	}
	c.JSON(http.StatusOK, exists)
}
