package client

import (
	"strings"
	"sync"

	"github.com/spec-kit/job-board/internal/api/dto"
)

// Page names a screen of the job board UI.
type Page string

const (
	PageHome         Page = "home"
	PageListings     Page = "listings"
	PageEmployers    Page = "employers"
	PageCandidates   Page = "candidates"
	PageDetails      Page = "details"
	PageApply        Page = "apply"
	PageApplications Page = "applications"
	PagePostJob      Page = "postjob"
)

// AuthMode selects the form shown by the auth dialog.
type AuthMode string

const (
	AuthModeLogin  AuthMode = "login"
	AuthModeSignup AuthMode = "signup"
)

// State is everything the UI renders from.
type State struct {
	CurrentPage Page
	SelectedJob *dto.JobResponse
	Jobs        []dto.JobResponse
	IsLoading   bool
	Error       string
	User        *dto.UserResponse
	ShowAuth    bool
	AuthMode    AuthMode
}

// InitialState is the state before the first fetch completes.
func InitialState() State {
	return State{
		CurrentPage: PageHome,
		Jobs:        []dto.JobResponse{},
		IsLoading:   true,
		AuthMode:    AuthModeLogin,
	}
}

// Action is a state transition request.
type Action interface {
	isAction()
}

// Navigate switches page; Job may be nil.
type Navigate struct {
	Page Page
	Job  *dto.JobResponse
}

type FetchJobsStarted struct{}

type FetchJobsSucceeded struct{ Jobs []dto.JobResponse }

type FetchJobsFailed struct{ Message string }

// Search narrows the held jobs to the matches and shows the listings. The
// jobs that did not match are gone until the next fetch.
type Search struct{ Query string }

type OpenAuth struct{ Mode AuthMode }

type CloseAuth struct{}

type SetAuthMode struct{ Mode AuthMode }

type LoggedIn struct{ User dto.UserResponse }

type LoggedOut struct{}

// JobPosted returns to the listings while the jobs are refetched.
type JobPosted struct{}

func (Navigate) isAction()           {}
func (FetchJobsStarted) isAction()   {}
func (FetchJobsSucceeded) isAction() {}
func (FetchJobsFailed) isAction()    {}
func (Search) isAction()             {}
func (OpenAuth) isAction()           {}
func (CloseAuth) isAction()          {}
func (SetAuthMode) isAction()        {}
func (LoggedIn) isAction()           {}
func (LoggedOut) isAction()          {}
func (JobPosted) isAction()          {}

// Reduce returns the state after applying the action. It never mutates s.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case Navigate:
		s.CurrentPage = a.Page
		s.SelectedJob = cloneJobPtr(a.Job)
	case FetchJobsStarted:
		s.IsLoading = true
	case FetchJobsSucceeded:
		s.IsLoading = false
		s.Jobs = cloneJobs(a.Jobs)
	case FetchJobsFailed:
		s.IsLoading = false
		s.Error = a.Message
	case Search:
		s.Jobs = filterJobs(s.Jobs, a.Query)
		s.CurrentPage = PageListings
	case OpenAuth:
		s.ShowAuth = true
		if a.Mode != "" {
			s.AuthMode = a.Mode
		}
	case CloseAuth:
		s.ShowAuth = false
	case SetAuthMode:
		s.AuthMode = a.Mode
	case LoggedIn:
		u := a.User
		s.User = &u
		s.ShowAuth = false
	case LoggedOut:
		s.User = nil
		s.CurrentPage = PageHome
	case JobPosted:
		s.CurrentPage = PageListings
		s.Error = ""
		s.SelectedJob = nil
		s.IsLoading = true
	}
	return s
}

func filterJobs(jobs []dto.JobResponse, query string) []dto.JobResponse {
	q := strings.ToLower(query)
	out := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		if strings.Contains(strings.ToLower(job.Title), q) ||
			strings.Contains(strings.ToLower(job.Company), q) ||
			strings.Contains(strings.ToLower(job.Location), q) {
			out = append(out, job)
		}
	}
	return out
}

func cloneJobs(jobs []dto.JobResponse) []dto.JobResponse {
	out := make([]dto.JobResponse, len(jobs))
	copy(out, jobs)
	return out
}

func cloneJobPtr(job *dto.JobResponse) *dto.JobResponse {
	if job == nil {
		return nil
	}
	j := *job
	return &j
}

// Store serializes dispatches against a State.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore starts from InitialState.
func NewStore() *Store {
	return &Store{state: InitialState()}
}

// Dispatch applies the action and returns the new state.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
	return s.state
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
