package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battlegear/api-server/internal/core/domain"
	"github.com/battlegear/api-server/internal/core/repository"
	logicv1 "github.com/battlegear/api-server/internal/logic/v1"
)

// loginTestServer wires the full login + guard path against miniredis, so
// session expiry behaves like production Redis.
func loginTestServer(t *testing.T, sessionTTL time.Duration) (*gin.Engine, *fakeUserRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	hasher := logicv1.NewBcryptHasher()
	hash, err := hasher.Hash("admin")
	require.NoError(t, err)

	users := newFakeUserRepo(&domain.User{UserID: 7, Username: "admin2", PasswordHash: hash})
	sessions := repository.NewSessionStore(client)
	auth := logicv1.NewAuthService(users, sessions, hasher, logicv1.NewTokenGenerator(), sessionTTL)

	r := gin.New()
	handler := NewHandler(auth, users, nil, hasher, nil, nil, nil, nil, nil, nil, nil)
	handler.RegisterRoutes(r)
	return r, users, mr
}

func doLogin(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doLogin(t, router, `{"username":"admin2","password":"admin"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestLoginEndpoint(t *testing.T) {
	router, _, _ := loginTestServer(t, 3*time.Hour)

	t.Run("valid credentials return a token", func(t *testing.T) {
		token := loginToken(t, router)
		assert.Len(t, token, logicv1.TokenLength)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doLogin(t, router, `{"username":"admin2","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	})

	t.Run("unknown username reads identically to wrong password", func(t *testing.T) {
		w := doLogin(t, router, `{"username":"nobody","password":"admin"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		w := doLogin(t, router, `{"username":"admin2"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginThenGuardedRequest(t *testing.T) {
	router, _, mr := loginTestServer(t, 3*time.Hour)
	token := loginToken(t, router)

	get := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("issued token is accepted", func(t *testing.T) {
		w := get("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("token with the last character flipped is rejected", func(t *testing.T) {
		flipped := token[:len(token)-1]
		if token[len(token)-1] == 'a' {
			flipped += "b"
		} else {
			flipped += "a"
		}

		w := get("Bearer " + flipped)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	})

	t.Run("expired session is rejected", func(t *testing.T) {
		mr.FastForward(3*time.Hour + time.Second)

		w := get("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLoginSessionExpiresWithTTL(t *testing.T) {
	router, _, mr := loginTestServer(t, time.Second)
	token := loginToken(t, router)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	mr.FastForward(2 * time.Second)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
