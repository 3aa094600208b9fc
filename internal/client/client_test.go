package client

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/job-board/internal/api/dto"
	httptransport "github.com/spec-kit/job-board/internal/api/http"
	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/observability"
	"github.com/spec-kit/job-board/internal/persistence"
	"github.com/spec-kit/job-board/internal/repository"
	"github.com/spec-kit/job-board/internal/service"
)

// startServer runs the API on a loopback port backed by the memory store.
func startServer(t *testing.T) string {
	t.Helper()
	store := repository.NewMemoryStore()
	sessions := auth.NewMemorySessionStore()
	dispatcher := events.NewInMemoryDispatcher()
	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	authService, err := service.NewAuthService(config.AuthConfig{
		JWTSecret:             "client-test",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
	}, service.AuthDependencies{UserRepo: store.Users(), Sessions: sessions})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{Logger: logger, Metrics: metrics, AllowOrigins: "*"})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler("job-board", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Metrics: handlers.NewMetricsHandler(metrics),
		Auth:    handlers.NewAuthHandler(authService),
		Jobs: handlers.NewJobsHandler(service.NewJobService(service.JobDependencies{
			JobRepo: store.Jobs(), Dispatcher: dispatcher,
		})),
		Applications: handlers.NewApplicationsHandler(service.NewApplicationService(service.ApplicationDependencies{
			ApplicationRepo: store.Applications(), JobRepo: store.Jobs(), UserRepo: store.Users(), Dispatcher: dispatcher,
		})),
		Directory: handlers.NewDirectoryHandler(service.NewDirectoryService(service.DirectoryDependencies{
			UserRepo: store.Users(), JobRepo: store.Jobs(), ApplicationRepo: store.Applications(),
		})),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), store.Users(), sessions),
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestClientAgainstServer(t *testing.T) {
	base := startServer(t)
	ctx := context.Background()

	employer := New(base)
	jobs, err := employer.Jobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	alice, err := employer.Signup(ctx, dto.SignupRequest{Name: "Alice", Email: "alice@acme.test", Password: "pw", Role: "employer"})
	require.NoError(t, err)
	assert.NotEmpty(t, employer.Token())

	job, err := employer.CreateJob(ctx, dto.JobCreateRequest{
		Title: "Backend Engineer", Company: "Acme", Location: "Remote", Type: "Full-time", Description: "Build APIs",
	})
	require.NoError(t, err)
	assert.Equal(t, alice.User.ID, job.PostedBy)

	fetched, err := employer.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", fetched.Company)

	candidate := New(base)
	bob, err := candidate.Signup(ctx, dto.SignupRequest{Name: "Bob", Email: "bob@mail.test", Password: "pw", Role: "candidate"})
	require.NoError(t, err)

	applied, err := candidate.Apply(ctx, job.ID, dto.ApplyRequest{Resume: "http://x/cv.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "Application submitted", applied.Message)
	assert.Equal(t, bob.User.ID, applied.Application.Candidate)

	apps, err := employer.JobApplications(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].Candidate)
	assert.Equal(t, "Bob", apps[0].Candidate.Name)

	pool, err := employer.Applicants(ctx, alice.User.ID)
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, []string{job.ID}, pool[0].Jobs)

	employers, err := candidate.Employers(ctx)
	require.NoError(t, err)
	require.Len(t, employers, 1)
	assert.Equal(t, "Alice", employers[0].Name)

	require.NoError(t, employer.Logout(ctx))
	assert.Empty(t, employer.Token())
}

func TestClientReportsAPIErrors(t *testing.T) {
	base := startServer(t)
	ctx := context.Background()
	c := New(base)

	_, err := c.Login(ctx, "nobody@mail.test", "pw")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, fiber.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Empty(t, c.Token())

	_, err = c.Job(ctx, "missing")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, fiber.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Job not found", apiErr.Message)
}

func TestSessionFlow(t *testing.T) {
	base := startServer(t)
	ctx := context.Background()
	s := NewSession(New(base))

	require.NoError(t, s.Refresh(ctx))
	assert.False(t, s.State().IsLoading)
	assert.Empty(t, s.State().Jobs)

	s.Dispatch(OpenAuth{Mode: AuthModeSignup})
	require.NoError(t, s.Signup(ctx, dto.SignupRequest{Name: "Alice", Email: "alice@acme.test", Password: "pw", Role: "employer"}))
	state := s.State()
	assert.False(t, state.ShowAuth)
	require.NotNil(t, state.User)

	s.Dispatch(Navigate{Page: PagePostJob})
	_, err := s.PostJob(ctx, dto.JobCreateRequest{Title: "T", Company: "C", Location: "L", Type: "Y", Description: "D"})
	require.NoError(t, err)
	state = s.State()
	assert.Equal(t, PageListings, state.CurrentPage)
	assert.False(t, state.IsLoading)
	assert.Len(t, state.Jobs, 1)

	pool, err := s.LoadCandidates(ctx)
	require.NoError(t, err)
	assert.Empty(t, pool)

	require.NoError(t, s.Logout(ctx))
	assert.Nil(t, s.State().User)
	assert.Equal(t, PageHome, s.State().CurrentPage)
}

func TestSessionRefreshFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	s := NewSession(New("http://" + addr))
	require.Error(t, s.Refresh(context.Background()))
	assert.False(t, s.State().IsLoading)
	assert.Equal(t, fetchJobsFailed, s.State().Error)
}
