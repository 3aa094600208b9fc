package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

type fixture struct {
	store        *repository.MemoryStore
	dispatcher   events.Dispatcher
	auth         *AuthService
	jobs         *JobService
	applications *ApplicationService
	directory    *DirectoryService
	published    []events.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:      repository.NewMemoryStore(),
		dispatcher: events.NewInMemoryDispatcher(),
	}
	record := func(ctx context.Context, e events.Event) error {
		f.published = append(f.published, e)
		return nil
	}
	f.dispatcher.Subscribe(events.EventJobPosted, record)
	f.dispatcher.Subscribe(events.EventApplicationSubmitted, record)

	var err error
	f.auth, err = NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
	}, AuthDependencies{UserRepo: f.store.Users(), Sessions: auth.NewMemorySessionStore()})
	require.NoError(t, err)

	f.jobs = NewJobService(JobDependencies{JobRepo: f.store.Jobs(), Dispatcher: f.dispatcher, Logger: zap.NewNop()})
	f.applications = NewApplicationService(ApplicationDependencies{
		ApplicationRepo: f.store.Applications(),
		JobRepo:         f.store.Jobs(),
		UserRepo:        f.store.Users(),
		Dispatcher:      f.dispatcher,
	})
	f.directory = NewDirectoryService(DirectoryDependencies{
		UserRepo:        f.store.Users(),
		JobRepo:         f.store.Jobs(),
		ApplicationRepo: f.store.Applications(),
	})
	return f
}

func (f *fixture) signup(t *testing.T, name, email string, role domain.Role) *domain.User {
	t.Helper()
	res, err := f.auth.Signup(context.Background(), SignupInput{Name: name, Email: email, Password: "pw-" + name, Role: role})
	require.NoError(t, err)
	return res.User
}

func (f *fixture) postJob(t *testing.T, employer *domain.User, title string) *domain.Job {
	t.Helper()
	job, err := f.jobs.Create(context.Background(), employer, JobCreateInput{
		Title:       title,
		Company:     "Acme",
		Location:    "Remote",
		Type:        "Full-time",
		Description: "Build things",
	})
	require.NoError(t, err)
	return job
}

func (f *fixture) apply(t *testing.T, candidate *domain.User, job *domain.Job) *domain.Application {
	t.Helper()
	app, err := f.applications.Apply(context.Background(), candidate, job.ID, ApplyInput{
		Name:   candidate.Name,
		Email:  candidate.Email,
		Resume: "http://x/resume.pdf",
	})
	require.NoError(t, err)
	return app
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de), "expected DomainError, got %T", err)
	require.Equal(t, status, de.HTTPStatus, de.Message)
}
