package service

import (
	"context"
	"strings"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// DirectoryService lists accounts and builds employer applicant pools.
type DirectoryService struct {
	users        repository.UserRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
}

// DirectoryDependencies bundles repositories for the directory service.
type DirectoryDependencies struct {
	UserRepo        repository.UserRepository
	JobRepo         repository.JobRepository
	ApplicationRepo repository.ApplicationRepository
}

// NewDirectoryService constructs the service.
func NewDirectoryService(deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		users:        deps.UserRepo,
		jobs:         deps.JobRepo,
		applications: deps.ApplicationRepo,
	}
}

// ListEmployers returns every employer account.
func (s *DirectoryService) ListEmployers(ctx context.Context) ([]domain.User, error) {
	return s.listRole(ctx, domain.RoleEmployer)
}

// ListCandidates returns every candidate account.
func (s *DirectoryService) ListCandidates(ctx context.Context) ([]domain.User, error) {
	return s.listRole(ctx, domain.RoleCandidate)
}

func (s *DirectoryService) listRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	users, err := s.users.ListByRole(ctx, role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return users, nil
}

// ApplicantPool returns the candidates who applied to any job of the
// employer, one entry per candidate in order of their first application.
// Each entry lists a job id once even when the candidate applied to that job
// several times; repeat applications are not repeated in JobIDs.
func (s *DirectoryService) ApplicantPool(ctx context.Context, requester *domain.User, employerID string) ([]domain.Applicant, error) {
	employerID = strings.TrimSpace(employerID)
	if requester == nil || requester.ID != employerID {
		return nil, apperrors.NewForbidden("employers can only view their own applicants")
	}

	jobs, err := s.jobs.ListByPoster(ctx, employerID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(jobs) == 0 {
		return []domain.Applicant{}, nil
	}
	jobIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}

	apps, err := s.applications.ListByJobs(ctx, jobIDs)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	candidates, err := usersByID(ctx, s.users, candidateIDs(apps))
	if err != nil {
		return nil, err
	}

	pool := groupApplicants(apps)
	result := make([]domain.Applicant, 0, len(pool))
	for _, entry := range pool {
		user, ok := candidates[entry.CandidateID]
		if !ok {
			continue
		}
		entry.Name = user.Name
		entry.Email = user.Email
		result = append(result, entry)
	}
	return result, nil
}

// groupApplicants collapses applications into one entry per candidate in
// first-seen order. Each entry lists the distinct job ids in the order the
// candidate first applied to them.
func groupApplicants(apps []domain.Application) []domain.Applicant {
	index := make(map[string]int)
	seenJob := make(map[string]map[string]struct{})
	var pool []domain.Applicant

	for _, app := range apps {
		pos, ok := index[app.CandidateID]
		if !ok {
			pos = len(pool)
			index[app.CandidateID] = pos
			seenJob[app.CandidateID] = make(map[string]struct{})
			pool = append(pool, domain.Applicant{CandidateID: app.CandidateID, JobIDs: []string{}})
		}
		if _, dup := seenJob[app.CandidateID][app.JobID]; dup {
			continue
		}
		seenJob[app.CandidateID][app.JobID] = struct{}{}
		pool[pos].JobIDs = append(pool[pos].JobIDs, app.JobID)
	}
	return pool
}
