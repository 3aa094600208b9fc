package client

import (
	"context"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/domain"
)

const fetchJobsFailed = "Failed to fetch jobs. Please check if the backend is running."

// Session drives a Store from API calls the way the UI does.
type Session struct {
	api   *Client
	store *Store
}

// NewSession pairs a client with a fresh store.
func NewSession(api *Client) *Session {
	return &Session{api: api, store: NewStore()}
}

// State returns the current view state.
func (s *Session) State() State {
	return s.store.State()
}

// Dispatch applies a UI action such as Navigate or Search.
func (s *Session) Dispatch(action Action) State {
	return s.store.Dispatch(action)
}

// Refresh refetches the job list. A failure is kept in State.Error.
func (s *Session) Refresh(ctx context.Context) error {
	s.store.Dispatch(FetchJobsStarted{})
	jobs, err := s.api.Jobs(ctx)
	if err != nil {
		s.store.Dispatch(FetchJobsFailed{Message: fetchJobsFailed})
		return err
	}
	s.store.Dispatch(FetchJobsSucceeded{Jobs: jobs})
	return nil
}

// Login signs in and closes the auth dialog.
func (s *Session) Login(ctx context.Context, email, password string) error {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.store.Dispatch(LoggedIn{User: res.User})
	return nil
}

// Signup creates the account, signs in and closes the auth dialog.
func (s *Session) Signup(ctx context.Context, req dto.SignupRequest) error {
	res, err := s.api.Signup(ctx, req)
	if err != nil {
		return err
	}
	s.store.Dispatch(LoggedIn{User: res.User})
	return nil
}

// Logout ends the session locally even when the server call fails.
func (s *Session) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	s.store.Dispatch(LoggedOut{})
	return err
}

// PostJob creates a job, returns to the listings and refetches.
func (s *Session) PostJob(ctx context.Context, req dto.JobCreateRequest) (*dto.JobResponse, error) {
	job, err := s.api.CreateJob(ctx, req)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(JobPosted{})
	return job, s.Refresh(ctx)
}

// LoadCandidates returns the applicant pool of a signed-in employer and
// every candidate account otherwise.
func (s *Session) LoadCandidates(ctx context.Context) ([]dto.ApplicantResponse, error) {
	user := s.store.State().User
	if user != nil && user.Role == string(domain.RoleEmployer) {
		return s.api.Applicants(ctx, user.ID)
	}
	candidates, err := s.api.Candidates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApplicantResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, dto.ApplicantResponse{ID: c.ID, Name: c.Name, Email: c.Email, Jobs: []string{}})
	}
	return out, nil
}
