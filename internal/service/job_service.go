package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// JobService coordinates job postings.
type JobService struct {
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// JobDependencies bundles repositories for job service.
type JobDependencies struct {
	JobRepo    repository.JobRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// JobCreateInput describes job creation payload.
type JobCreateInput struct {
	Title            string
	Company          string
	Location         string
	Type             string
	Description      string
	Responsibilities []string
	Qualifications   []string
	Salary           string
	PostedDate       *time.Time
	PostedBy         string
}

// NewJobService constructs the service.
func NewJobService(deps JobDependencies) *JobService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{jobs: deps.JobRepo, dispatcher: deps.Dispatcher, logger: logger}
}

// List returns every job in posting order.
func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return jobs, nil
}

// Get fetches a single job. Malformed ids are reported as missing jobs.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return findJob(ctx, s.jobs, id)
}

// Create stores a job posted by the given employer.
func (s *JobService) Create(ctx context.Context, poster *domain.User, input JobCreateInput) (*domain.Job, error) {
	if poster == nil || poster.Role != domain.RoleEmployer {
		return nil, apperrors.NewForbidden("only employers can post jobs")
	}
	if postedBy := strings.TrimSpace(input.PostedBy); postedBy != "" && postedBy != poster.ID {
		return nil, apperrors.NewForbidden("postedBy must be the signed-in employer")
	}

	job := &domain.Job{
		Title:            plainText(input.Title),
		Company:          plainText(input.Company),
		Location:         plainText(input.Location),
		Type:             plainText(input.Type),
		Description:      plainText(input.Description),
		Responsibilities: plainLines(input.Responsibilities),
		Qualifications:   plainLines(input.Qualifications),
		Salary:           plainText(input.Salary),
		PostedBy:         poster.ID,
	}
	if input.PostedDate != nil {
		job.PostedDate = input.PostedDate.UTC()
	}

	if missing := missingJobFields(job); len(missing) > 0 {
		return nil, apperrors.NewValidationError(
			"Job validation failed: "+strings.Join(missing, ", ")+" required",
			map[string]any{"fields": missing},
		)
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventJobPosted,
		ActorID: poster.ID,
		Payload: events.JobPostedPayload{
			JobID:    job.ID,
			Title:    job.Title,
			Company:  job.Company,
			PostedBy: job.PostedBy,
		},
	})
	return job, nil
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
	publishEvent(ctx, s.dispatcher, s.logger, event)
}

func missingJobFields(job *domain.Job) []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"title", job.Title},
		{"company", job.Company},
		{"location", job.Location},
		{"type", job.Type},
		{"description", job.Description},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func findJob(ctx context.Context, jobs repository.JobRepository, id string) (*domain.Job, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return nil, apperrors.NewNotFound("Job")
	}
	job, err := jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Job")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return job, nil
}

// publishEvent stamps and delivers an event. Delivery failures are logged and
// never fail the request that produced the event.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
