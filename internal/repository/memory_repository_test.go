package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board/internal/domain"
)

func TestMemoryUsersRejectDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryStore().Users()

	first := &domain.User{Name: "Alice", Email: "alice@acme.test", Role: domain.RoleEmployer}
	require.NoError(t, users.Create(ctx, first))
	require.NotEmpty(t, first.ID)

	err := users.Create(ctx, &domain.User{Name: "Other", Email: "alice@acme.test", Role: domain.RoleCandidate})
	require.ErrorIs(t, err, ErrDuplicate)

	candidates, err := users.ListByRole(ctx, domain.RoleCandidate)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestMemoryUsersLookups(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryStore().Users()

	alice := &domain.User{Name: "Alice", Email: "alice@acme.test", Role: domain.RoleEmployer}
	bob := &domain.User{Name: "Bob", Email: "bob@mail.test", Role: domain.RoleCandidate}
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	got, err := users.GetByEmail(ctx, "bob@mail.test")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, got.ID)

	_, err = users.GetByID(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	listed, err := users.ListByIDs(ctx, []string{bob.ID, alice.ID})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, alice.ID, listed[0].ID, "insertion order")
}

func TestMemoryJobsDefaultsAndIsolation(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	jobs := NewMemoryStore().WithClock(func() time.Time { return fixed }).Jobs()

	job := &domain.Job{Title: "Backend Engineer", PostedBy: "emp-1"}
	require.NoError(t, jobs.Create(ctx, job))
	assert.Equal(t, fixed, job.PostedDate)
	assert.NotNil(t, job.Responsibilities)
	assert.NotNil(t, job.Qualifications)

	fetched, err := jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	fetched.Responsibilities = append(fetched.Responsibilities, "mutated")

	again, err := jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Responsibilities)

	mine, err := jobs.ListByPoster(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := jobs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryApplicationsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	apps := NewMemoryStore().Applications()

	for _, jobID := range []string{"b", "a", "b", "c"} {
		require.NoError(t, apps.Create(ctx, &domain.Application{JobID: jobID, CandidateID: "cand"}))
	}

	listed, err := apps.ListByJobs(ctx, []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []string{"b", "a", "b"}, []string{listed[0].JobID, listed[1].JobID, listed[2].JobID})

	none, err := apps.ListByJobs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}
