package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// JobCreateRequest payload for posting a job.
type JobCreateRequest struct {
	Title            string     `json:"title" validate:"required,max=200"`
	Company          string     `json:"company" validate:"required,max=200"`
	Location         string     `json:"location" validate:"required,max=200"`
	Type             string     `json:"type" validate:"required,max=100"`
	Description      string     `json:"description" validate:"required,max=20000"`
	Responsibilities []string   `json:"responsibilities" validate:"max=100,dive,max=1000"`
	Qualifications   []string   `json:"qualifications" validate:"max=100,dive,max=1000"`
	Salary           string     `json:"salary" validate:"max=200"`
	PostedDate       *time.Time `json:"postedDate"`
	PostedBy         string     `json:"postedBy"`
}

// Normalize trims the scalar fields.
func (r *JobCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Company = strings.TrimSpace(r.Company)
	r.Location = strings.TrimSpace(r.Location)
	r.Type = strings.TrimSpace(r.Type)
	r.Description = strings.TrimSpace(r.Description)
	r.Salary = strings.TrimSpace(r.Salary)
	r.PostedBy = strings.TrimSpace(r.PostedBy)
}

// JobResponse is the wire form of a job.
type JobResponse struct {
	ID               string    `json:"_id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	Type             string    `json:"type"`
	Description      string    `json:"description"`
	Responsibilities []string  `json:"responsibilities"`
	Qualifications   []string  `json:"qualifications"`
	Salary           string    `json:"salary,omitempty"`
	PostedDate       time.Time `json:"postedDate"`
	PostedBy         string    `json:"postedBy"`
}

// NewJobResponse maps a domain job.
func NewJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		ID:               j.ID,
		Title:            j.Title,
		Company:          j.Company,
		Location:         j.Location,
		Type:             j.Type,
		Description:      j.Description,
		Responsibilities: nonNil(j.Responsibilities),
		Qualifications:   nonNil(j.Qualifications),
		Salary:           j.Salary,
		PostedDate:       j.PostedDate,
		PostedBy:         j.PostedBy,
	}
}

// NewJobList maps jobs, always returning a non-nil slice.
func NewJobList(jobs []domain.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}

func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}
