package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, h.Matches(hash, "hunter2"))
	assert.False(t, h.Matches(hash, "hunter3"))
	assert.False(t, h.Matches("not-a-hash", "hunter2"))
}

func TestPasswordHasherClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.MaxCost, NewPasswordHasher(99).cost)
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, issued, err := tm.GenerateToken("user-1", domain.RoleEmployer)
	require.NoError(t, err)

	session, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, domain.RoleEmployer, session.Role)
	assert.Equal(t, issued.TokenID, session.TokenID)
	assert.WithinDuration(t, issued.ExpiresAt, session.ExpiresAt, time.Second)
}

func TestTokenRejectsForeignSecretAndExpiry(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)
	token, _, err := tm.GenerateToken("user-1", domain.RoleCandidate)
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Minute).ParseToken(token)
	require.Error(t, err)

	tm.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = tm.ParseToken(token)
	require.Error(t, err)

	_, err = tm.ParseToken("garbage")
	require.Error(t, err)
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	require.NoError(t, store.Revoke(ctx, "live", time.Now().Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "stale", time.Now().Add(-time.Second)))

	revoked, err := store.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func newProtectedApp(t *testing.T) (*fiber.App, *TokenManager, SessionStore, *domain.User, *domain.User) {
	t.Helper()
	store := repository.NewMemoryStore()
	employer := &domain.User{Name: "Alice", Email: "alice@acme.test", Role: domain.RoleEmployer}
	candidate := &domain.User{Name: "Bob", Email: "bob@mail.test", Role: domain.RoleCandidate}
	require.NoError(t, store.Users().Create(context.Background(), employer))
	require.NoError(t, store.Users().Create(context.Background(), candidate))

	tokens := NewTokenManager("secret", time.Hour)
	sessions := NewMemorySessionStore()
	mw := NewAuthMiddleware(tokens, store.Users(), sessions)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"message": de.Message})
		},
	})
	app.Get("/me", mw.Handle, func(c *fiber.Ctx) error {
		p, ok := PrincipalFromContext(c)
		if !ok {
			return c.SendStatus(http.StatusTeapot)
		}
		return c.SendString(p.User.Name)
	})
	app.Get("/employers-only", mw.Handle, RequireRole(domain.RoleEmployer), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})
	return app, tokens, sessions, employer, candidate
}

func TestAuthMiddleware(t *testing.T) {
	app, tokens, sessions, employer, candidate := newProtectedApp(t)

	employerToken, employerSession, err := tokens.GenerateToken(employer.ID, employer.Role)
	require.NoError(t, err)
	candidateToken, _, err := tokens.GenerateToken(candidate.ID, candidate.Role)
	require.NoError(t, err)
	ghostToken, _, err := tokens.GenerateToken("00000000-0000-0000-0000-000000000000", domain.RoleCandidate)
	require.NoError(t, err)

	cases := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"missing header", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic abc", http.StatusUnauthorized},
		{"bad token", "/me", "Bearer nope", http.StatusUnauthorized},
		{"unknown user", "/me", "Bearer " + ghostToken, http.StatusUnauthorized},
		{"valid", "/me", "Bearer " + employerToken, http.StatusOK},
		{"role allowed", "/employers-only", "Bearer " + employerToken, http.StatusNoContent},
		{"role denied", "/employers-only", "Bearer " + candidateToken, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}

	require.NoError(t, sessions.Revoke(context.Background(), employerSession.TokenID, employerSession.ExpiresAt))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+employerToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
