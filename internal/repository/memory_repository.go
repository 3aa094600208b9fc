package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/job-board/internal/domain"
)

// MemoryStore keeps every record in process memory. It backs the service when
// no POSTGRES_DSN is configured and serves as the test double for the
// Postgres repositories.
type MemoryStore struct {
	mu           sync.RWMutex
	users        []domain.User
	jobs         []domain.Job
	applications []domain.Application
	now          func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: func() time.Time { return time.Now().UTC() }}
}

// WithClock replaces the timestamp source used for defaults.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

// Users exposes the store as a UserRepository.
func (s *MemoryStore) Users() UserRepository { return memoryUsers{s} }

// Jobs exposes the store as a JobRepository.
func (s *MemoryStore) Jobs() JobRepository { return memoryJobs{s} }

// Applications exposes the store as an ApplicationRepository.
func (s *MemoryStore) Applications() ApplicationRepository { return memoryApplications{s} }

type memoryUsers struct{ s *MemoryStore }

func (r memoryUsers) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return ErrDuplicate
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = r.s.now()
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r memoryUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryUsers) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.User{}
	for _, user := range r.s.users {
		if user.Role == role {
			result = append(result, user)
		}
	}
	return result, nil
}

func (r memoryUsers) ListByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	wanted := toSet(ids)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.User{}
	for _, user := range r.s.users {
		if _, ok := wanted[user.ID]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

type memoryJobs struct{ s *MemoryStore }

func (r memoryJobs) Create(ctx context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	job.ID = uuid.NewString()
	if job.PostedDate.IsZero() {
		job.PostedDate = r.s.now()
	}
	job.Responsibilities = nonNil(job.Responsibilities)
	job.Qualifications = nonNil(job.Qualifications)
	stored := *job
	stored.Responsibilities = append([]string(nil), job.Responsibilities...)
	stored.Qualifications = append([]string(nil), job.Qualifications...)
	r.s.jobs = append(r.s.jobs, stored)
	return nil
}

func (r memoryJobs) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, job := range r.s.jobs {
		if job.ID == id {
			found := cloneJob(job)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryJobs) List(ctx context.Context) ([]domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]domain.Job, 0, len(r.s.jobs))
	for _, job := range r.s.jobs {
		result = append(result, cloneJob(job))
	}
	return result, nil
}

func (r memoryJobs) ListByPoster(ctx context.Context, employerID string) ([]domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.Job{}
	for _, job := range r.s.jobs {
		if job.PostedBy == employerID {
			result = append(result, cloneJob(job))
		}
	}
	return result, nil
}

type memoryApplications struct{ s *MemoryStore }

func (r memoryApplications) Create(ctx context.Context, app *domain.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	app.ID = uuid.NewString()
	app.AppliedAt = r.s.now()
	r.s.applications = append(r.s.applications, *app)
	return nil
}

func (r memoryApplications) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	return r.ListByJobs(ctx, []string{jobID})
}

func (r memoryApplications) ListByJobs(ctx context.Context, jobIDs []string) ([]domain.Application, error) {
	wanted := toSet(jobIDs)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []domain.Application{}
	for _, app := range r.s.applications {
		if _, ok := wanted[app.JobID]; ok {
			result = append(result, app)
		}
	}
	return result, nil
}

func cloneJob(job domain.Job) domain.Job {
	job.Responsibilities = append([]string{}, job.Responsibilities...)
	job.Qualifications = append([]string{}, job.Qualifications...)
	return job
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[strings.TrimSpace(id)] = struct{}{}
	}
	return set
}
