package domain

import "time"

// Job is a posting created by an employer.
type Job struct {
	ID               string
	Title            string
	Company          string
	Location         string
	Type             string
	Description      string
	Responsibilities []string
	Qualifications   []string
	Salary           string
	PostedDate       time.Time
	PostedBy         string
}
