package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ApplicationService coordinates applying to jobs and reviewing applicants.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	users        repository.UserRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// ApplicationDependencies bundles repositories for application service.
type ApplicationDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	JobRepo         repository.JobRepository
	UserRepo        repository.UserRepository
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// ApplyInput is the body of an application.
type ApplyInput struct {
	Name        string
	Email       string
	Resume      string
	CandidateID string
}

// NewApplicationService constructs the service.
func NewApplicationService(deps ApplicationDependencies) *ApplicationService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{
		applications: deps.ApplicationRepo,
		jobs:         deps.JobRepo,
		users:        deps.UserRepo,
		dispatcher:   deps.Dispatcher,
		logger:       logger,
	}
}

// Job returns the job applications are made to.
func (s *ApplicationService) Job(ctx context.Context, jobID string) (*domain.Job, error) {
	return findJob(ctx, s.jobs, jobID)
}

// Apply records an application from the candidate. Applying again to the
// same job creates another record.
func (s *ApplicationService) Apply(ctx context.Context, candidate *domain.User, jobID string, input ApplyInput) (*domain.Application, error) {
	job, err := findJob(ctx, s.jobs, jobID)
	if err != nil {
		return nil, err
	}
	if candidate == nil || candidate.Role != domain.RoleCandidate {
		return nil, apperrors.NewForbidden("only candidates can apply to jobs")
	}
	if id := strings.TrimSpace(input.CandidateID); id != "" && id != candidate.ID {
		return nil, apperrors.NewForbidden("candidateId must be the signed-in candidate")
	}

	app := &domain.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		Name:        plainText(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Resume:      plainText(input.Resume),
	}
	if app.Name == "" {
		app.Name = candidate.Name
	}
	if app.Email == "" {
		app.Email = candidate.Email
	}

	if err := s.applications.Create(ctx, app); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:    events.EventApplicationSubmitted,
		ActorID: candidate.ID,
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID: app.ID,
			JobID:         job.ID,
			JobTitle:      job.Title,
			EmployerID:    job.PostedBy,
			CandidateID:   candidate.ID,
			ApplicantName: app.Name,
		},
	})
	return app, nil
}

// ListForJob returns the applications of a job owned by the employer, each
// joined with the applicant's account. Candidate is nil when the account no
// longer exists.
func (s *ApplicationService) ListForJob(ctx context.Context, employer *domain.User, jobID string) ([]domain.ApplicationWithCandidate, error) {
	job, err := findJob(ctx, s.jobs, jobID)
	if err != nil {
		return nil, err
	}
	if employer == nil || job.PostedBy != employer.ID {
		return nil, apperrors.NewForbidden("only the employer who posted this job can view its applications")
	}

	apps, err := s.applications.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	candidates, err := usersByID(ctx, s.users, candidateIDs(apps))
	if err != nil {
		return nil, err
	}

	result := make([]domain.ApplicationWithCandidate, 0, len(apps))
	for _, app := range apps {
		entry := domain.ApplicationWithCandidate{Application: app}
		if user, ok := candidates[app.CandidateID]; ok {
			u := user
			entry.Candidate = &u
		}
		result = append(result, entry)
	}
	return result, nil
}

func candidateIDs(apps []domain.Application) []string {
	seen := make(map[string]struct{}, len(apps))
	ids := make([]string, 0, len(apps))
	for _, app := range apps {
		if _, ok := seen[app.CandidateID]; ok {
			continue
		}
		seen[app.CandidateID] = struct{}{}
		ids = append(ids, app.CandidateID)
	}
	return ids
}

func usersByID(ctx context.Context, users repository.UserRepository, ids []string) (map[string]domain.User, error) {
	found, err := users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	byID := make(map[string]domain.User, len(found))
	for _, user := range found {
		byID[user.ID] = user
	}
	return byID, nil
}
