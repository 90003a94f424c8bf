package v1

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battlegear/api-server/internal/core/domain"
)

// stubUserRepo implements domain.UserRepository with overridable behaviour
// for the methods the auth flow touches.
type stubUserRepo struct {
	findByUsername  func(ctx context.Context, username string) (*domain.User, error)
	findByID        func(ctx context.Context, id int) (*domain.User, error)
	lastLoginCalls  []int
	updateLastLogin func(ctx context.Context, userID int) error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int) (*domain.User, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return nil, nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if s.findByUsername != nil {
		return s.findByUsername(ctx, username)
	}
	return nil, nil
}

func (s *stubUserRepo) FindMultiple(ctx context.Context, limit int) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindWithRoles(ctx context.Context) ([]domain.UserWithRoles, error) {
	return nil, nil
}

func (s *stubUserRepo) Create(ctx context.Context, newUser domain.NewUser, roleCodes []string) (*domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(ctx context.Context, id int, user domain.User) (*domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id int) error { return nil }

func (s *stubUserRepo) DeleteByUsername(ctx context.Context, username string) error { return nil }

func (s *stubUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, userID int) error {
	s.lastLoginCalls = append(s.lastLoginCalls, userID)
	if s.updateLastLogin != nil {
		return s.updateLastLogin(ctx, userID)
	}
	return nil
}

// stubSessionStore is an in-memory domain.SessionStore that records the TTL
// it was handed.
type stubSessionStore struct {
	sessions map[string]int
	lastTTL  time.Duration
	setErr   error
	getErr   error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]int)}
}

func (s *stubSessionStore) Set(ctx context.Context, token string, userID int, ttl time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sessions[token] = userID
	s.lastTTL = ttl
	return nil
}

func (s *stubSessionStore) Get(ctx context.Context, token string) (int, error) {
	if s.getErr != nil {
		return 0, s.getErr
	}
	userID, ok := s.sessions[token]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	return userID, nil
}

func newTestService(t *testing.T, users domain.UserRepository, sessions domain.SessionStore) *AuthService {
	t.Helper()
	return NewAuthService(users, sessions, NewBcryptHasher(), NewTokenGenerator(), 3*time.Hour)
}

func testUser(t *testing.T, id int, username, password string) *domain.User {
	t.Helper()
	hash, err := NewBcryptHasher().Hash(password)
	require.NoError(t, err)
	return &domain.User{UserID: id, Username: username, PasswordHash: hash}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return a token and persist the session", func(t *testing.T) {
		user := testUser(t, 7, "admin2", "admin")
		users := &stubUserRepo{
			findByUsername: func(ctx context.Context, username string) (*domain.User, error) {
				assert.Equal(t, "admin2", username)
				return user, nil
			},
		}
		sessions := newStubSessionStore()
		svc := newTestService(t, users, sessions)

		resp, err := svc.Login(ctx, domain.Credentials{Username: "admin2", Password: "admin"})
		require.NoError(t, err)
		assert.Len(t, resp.Token, TokenLength)

		assert.Equal(t, 7, sessions.sessions[resp.Token])
		assert.Equal(t, 3*time.Hour, sessions.lastTTL)
		assert.Equal(t, []int{7}, users.lastLoginCalls)
	})

	t.Run("unknown username", func(t *testing.T) {
		sessions := newStubSessionStore()
		svc := newTestService(t, &stubUserRepo{}, sessions)

		_, err := svc.Login(ctx, domain.Credentials{Username: "ghost", Password: "admin"})
		require.ErrorIs(t, err, ErrUserNotFound)
		assert.Empty(t, sessions.sessions)
	})

	t.Run("wrong password", func(t *testing.T) {
		user := testUser(t, 7, "admin2", "admin")
		users := &stubUserRepo{
			findByUsername: func(ctx context.Context, username string) (*domain.User, error) {
				return user, nil
			},
		}
		sessions := newStubSessionStore()
		svc := newTestService(t, users, sessions)

		_, err := svc.Login(ctx, domain.Credentials{Username: "admin2", Password: "wrong"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, sessions.sessions)
		assert.Empty(t, users.lastLoginCalls, "failed login must not touch last_login")
	})

	t.Run("repository failure is not an auth failure", func(t *testing.T) {
		users := &stubUserRepo{
			findByUsername: func(ctx context.Context, username string) (*domain.User, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := newTestService(t, users, newStubSessionStore())

		_, err := svc.Login(ctx, domain.Credentials{Username: "admin2", Password: "admin"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("session write failure fails the login", func(t *testing.T) {
		user := testUser(t, 7, "admin2", "admin")
		users := &stubUserRepo{
			findByUsername: func(ctx context.Context, username string) (*domain.User, error) {
				return user, nil
			},
		}
		sessions := newStubSessionStore()
		sessions.setErr = errors.New("redis down")
		svc := newTestService(t, users, sessions)

		_, err := svc.Login(ctx, domain.Credentials{Username: "admin2", Password: "admin"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("last_login failure does not fail the login", func(t *testing.T) {
		user := testUser(t, 7, "admin2", "admin")
		users := &stubUserRepo{
			findByUsername: func(ctx context.Context, username string) (*domain.User, error) {
				return user, nil
			},
			updateLastLogin: func(ctx context.Context, userID int) error {
				return errors.New("write timeout")
			},
		}
		svc := newTestService(t, users, newStubSessionStore())

		resp, err := svc.Login(ctx, domain.Credentials{Username: "admin2", Password: "admin"})
		require.NoError(t, err)
		assert.Len(t, resp.Token, TokenLength)
	})
}

func TestUserFromToken(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a live session", func(t *testing.T) {
		user := testUser(t, 7, "admin2", "admin")
		users := &stubUserRepo{
			findByID: func(ctx context.Context, id int) (*domain.User, error) {
				assert.Equal(t, 7, id)
				return user, nil
			},
		}
		sessions := newStubSessionStore()
		sessions.sessions["tok"] = 7
		svc := newTestService(t, users, sessions)

		got, err := svc.UserFromToken(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := newTestService(t, &stubUserRepo{}, newStubSessionStore())

		_, err := svc.UserFromToken(ctx, "never-issued")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("session outlives its user", func(t *testing.T) {
		sessions := newStubSessionStore()
		sessions.sessions["tok"] = 7
		svc := newTestService(t, &stubUserRepo{}, sessions)

		_, err := svc.UserFromToken(ctx, "tok")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("store failure is surfaced as-is", func(t *testing.T) {
		sessions := newStubSessionStore()
		sessions.getErr = errors.New("redis down")
		svc := newTestService(t, &stubUserRepo{}, sessions)

		_, err := svc.UserFromToken(ctx, "tok")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSessionNotFound)
	})
}
