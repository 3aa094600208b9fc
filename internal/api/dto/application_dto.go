package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// ApplyRequest payload for applying to a job. Fields are free text and only
// their length is bounded.
type ApplyRequest struct {
	Name        string `json:"name" validate:"max=200"`
	Email       string `json:"email" validate:"max=320"`
	Resume      string `json:"resume" validate:"max=5000"`
	CandidateID string `json:"candidateId"`
}

// Normalize trims every field.
func (r *ApplyRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Resume = strings.TrimSpace(r.Resume)
	r.CandidateID = strings.TrimSpace(r.CandidateID)
}

// ApplicationResponse is an application with the candidate as an id.
type ApplicationResponse struct {
	ID        string    `json:"_id"`
	Job       string    `json:"job"`
	Candidate string    `json:"candidate"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Resume    string    `json:"resume"`
	AppliedAt time.Time `json:"appliedAt"`
}

// ApplyResponse is returned after a successful apply.
type ApplyResponse struct {
	Message     string              `json:"message"`
	Application ApplicationResponse `json:"application"`
}

// CandidateSummary is the joined applicant account.
type CandidateSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JobApplicationResponse is an application listed for its employer, with the
// candidate account joined. Candidate is null when the account is gone.
type JobApplicationResponse struct {
	ID        string            `json:"_id"`
	Job       string            `json:"job"`
	Candidate *CandidateSummary `json:"candidate"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Resume    string            `json:"resume"`
	AppliedAt time.Time         `json:"appliedAt"`
}

// ApplicantResponse is one entry of an employer's applicant pool.
type ApplicantResponse struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Jobs  []string `json:"jobs"`
}

// NewApplicationResponse maps a domain application.
func NewApplicationResponse(a *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		Job:       a.JobID,
		Candidate: a.CandidateID,
		Name:      a.Name,
		Email:     a.Email,
		Resume:    a.Resume,
		AppliedAt: a.AppliedAt,
	}
}

// NewJobApplicationList maps joined applications.
func NewJobApplicationList(apps []domain.ApplicationWithCandidate) []JobApplicationResponse {
	out := make([]JobApplicationResponse, 0, len(apps))
	for _, a := range apps {
		item := JobApplicationResponse{
			ID:        a.ID,
			Job:       a.JobID,
			Name:      a.Name,
			Email:     a.Email,
			Resume:    a.Resume,
			AppliedAt: a.AppliedAt,
		}
		if a.Candidate != nil {
			item.Candidate = &CandidateSummary{ID: a.Candidate.ID, Name: a.Candidate.Name, Email: a.Candidate.Email}
		}
		out = append(out, item)
	}
	return out
}

// NewApplicantList maps an applicant pool.
func NewApplicantList(pool []domain.Applicant) []ApplicantResponse {
	out := make([]ApplicantResponse, 0, len(pool))
	for _, p := range pool {
		out = append(out, ApplicantResponse{ID: p.CandidateID, Name: p.Name, Email: p.Email, Jobs: nonNil(p.JobIDs)})
	}
	return out
}
