package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventJobPosted            EventType = "job_posted"
	EventApplicationSubmitted EventType = "application_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// JobPostedPayload payload.
type JobPostedPayload struct {
	JobID    string `json:"job_id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	PostedBy string `json:"posted_by"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	EmployerID    string `json:"employer_id"`
	CandidateID   string `json:"candidate_id"`
	ApplicantName string `json:"applicant_name"`
}
