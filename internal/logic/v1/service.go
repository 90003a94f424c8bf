package v1

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/battlegear/api-server/internal/core/domain"
	"github.com/battlegear/api-server/middleware"
)

// AuthService implements the authentication business rules.
// It depends on repository interfaces (injected via constructor) and
// MUST NOT access the database, Redis or SQL directly.
type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionStore
	hasher     PasswordHasher
	tokens     TokenGenerator
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(
	users domain.UserRepository,
	sessions domain.SessionStore,
	hasher PasswordHasher,
	tokens TokenGenerator,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		hasher:     hasher,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// Login verifies the credentials, mints a session token and persists the
// session with the configured TTL. Unknown username and wrong password
// return distinct sentinels; the web layer collapses both to the same 401.
func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) (*domain.LoginResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("username", credentials.Username),
	))
	defer span.End()

	user, err := s.users.FindByUsername(ctx, credentials.Username)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %q: %w", credentials.Username, err)
	}
	if user == nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate user %q: %w", credentials.Username, ErrUserNotFound)
	}

	token, err := s.Authorize(user, credentials)
	if err != nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, err
	}

	// Best-effort; a missing last_login must not fail a valid login.
	if updateErr := s.users.UpdateLastLogin(ctx, user.UserID); updateErr != nil {
		span.RecordError(fmt.Errorf("update last_login: %w", updateErr))
	}

	// The session write is not best-effort: a token the guard can never
	// resolve is worse than a failed login.
	if err := s.sessions.Set(ctx, token, user.UserID, s.sessionTTL); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("persist session: %w", err)
	}

	span.SetAttributes(
		attribute.Int("user.id", user.UserID),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")

	return &domain.LoginResponse{Token: token}, nil
}

// Authorize checks the credentials against the user's stored hash and
// mints a new session token on success. It performs no I/O; persisting the
// session is the caller's responsibility.
func (s *AuthService) Authorize(user *domain.User, credentials domain.Credentials) (string, error) {
	if !s.hasher.Verify(credentials.Password, user.PasswordHash) {
		return "", fmt.Errorf("authenticate user %q: %w", credentials.Username, ErrInvalidCredentials)
	}
	return s.tokens.Generate()
}

// UserFromToken resolves a session token to the owning user record.
// A cache miss (unknown or expired token) returns ErrSessionNotFound; a
// session whose user has since been deleted returns ErrUserNotFound.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.user_from_token", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			span.SetAttributes(attribute.Bool("session.valid", false))
			return nil, fmt.Errorf("lookup session: %w", ErrSessionNotFound)
		}
		span.RecordError(err)
		return nil, fmt.Errorf("query session: %w", err)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %d: %w", userID, err)
	}
	if user == nil {
		// Session outlived its user.
		span.SetAttributes(attribute.Bool("session.valid", false))
		return nil, fmt.Errorf("resolve session user %d: %w", userID, ErrUserNotFound)
	}

	span.SetAttributes(
		attribute.Int("user.id", user.UserID),
		attribute.Bool("session.valid", true),
	)

	return user, nil
}
