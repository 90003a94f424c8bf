package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battlegear/api-server/internal/core/domain"
	logicv1 "github.com/battlegear/api-server/internal/logic/v1"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUserRepo backs the handler tests with an in-memory user table.
type fakeUserRepo struct {
	users   map[int]*domain.User
	findErr error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[int]*domain.User)}
	for _, u := range users {
		repo.users[u.UserID] = u
	}
	return repo
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindMultiple(ctx context.Context, limit int) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindWithRoles(ctx context.Context) ([]domain.UserWithRoles, error) {
	return nil, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser domain.NewUser, roleCodes []string) (*domain.User, error) {
	id := len(f.users) + 1
	u := &domain.User{UserID: id, Username: newUser.Username, Email: newUser.Email, PasswordHash: newUser.PasswordHash}
	f.users[id] = u
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id int, user domain.User) (*domain.User, error) {
	if _, ok := f.users[id]; !ok {
		return nil, nil
	}
	user.UserID = id
	f.users[id] = &user
	return &user, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) DeleteByUsername(ctx context.Context, username string) error { return nil }

func (f *fakeUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	u, _ := f.FindByUsername(ctx, username)
	return u != nil, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID int) error { return nil }

// memorySessionStore is a map-backed domain.SessionStore.
type memorySessionStore struct {
	sessions map[string]int
	getErr   error
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]int)}
}

func (m *memorySessionStore) Set(ctx context.Context, token string, userID int, ttl time.Duration) error {
	m.sessions[token] = userID
	return nil
}

func (m *memorySessionStore) Get(ctx context.Context, token string) (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	userID, ok := m.sessions[token]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	return userID, nil
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"well-formed", "Bearer abc123", "abc123", true},
		{"extra whitespace", "Bearer   abc123", "abc123", true},
		{"empty header", "", "", false},
		{"scheme only", "Bearer", "", false},
		{"wrong scheme", "Basic abc123", "", false},
		{"lowercase scheme", "bearer abc123", "", false},
		{"trailing fields", "Bearer abc123 extra", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := ParseBearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func guardTestRouter(auth *logicv1.AuthService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(auth), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": user.UserID})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	user := &domain.User{UserID: 7, Username: "admin2"}
	users := newFakeUserRepo(user)
	sessions := newMemorySessionStore()
	sessions.sessions["validtoken"] = 7
	sessions.sessions["orphantoken"] = 99

	auth := logicv1.NewAuthService(users, sessions,
		logicv1.NewBcryptHasher(), logicv1.NewTokenGenerator(), 3*time.Hour)
	router := guardTestRouter(auth)

	const wantUnauthorized = `{"error":"Unauthorized"}`

	rejections := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic validtoken"},
		{"scheme without token", "Bearer"},
		{"lowercase scheme", "bearer validtoken"},
		{"unknown token", "Bearer neverissued"},
		{"token for deleted user", "Bearer orphantoken"},
	}

	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			// Every rejection reads the same from outside.
			assert.JSONEq(t, wantUnauthorized, w.Body.String())
		})
	}

	t.Run("valid token reaches the handler with the user attached", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer validtoken")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
	})

	t.Run("store failure is a 500, not a 401", func(t *testing.T) {
		broken := newMemorySessionStore()
		broken.getErr = errors.New("redis down")
		brokenAuth := logicv1.NewAuthService(users, broken,
			logicv1.NewBcryptHasher(), logicv1.NewTokenGenerator(), 3*time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer validtoken")
		w := httptest.NewRecorder()
		guardTestRouter(brokenAuth).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
