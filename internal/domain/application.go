package domain

import "time"

// Application records a candidate applying to a job. Name and email are kept
// as submitted and may differ from the candidate's account.
type Application struct {
	ID          string
	JobID       string
	CandidateID string
	Name        string
	Email       string
	Resume      string
	AppliedAt   time.Time
}

// ApplicationWithCandidate joins an application with the applicant's account.
type ApplicationWithCandidate struct {
	Application
	Candidate *User
}

// Applicant is one entry of an employer's applicant pool.
type Applicant struct {
	CandidateID string
	Name        string
	Email       string
	JobIDs      []string
}
