// internal/models/job.go
package models

// JobType is the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeFreelance  JobType = "Freelance"
	JobTypeInternship JobType = "Internship"
)

// JobLevel is the seniority band of a posting.
type JobLevel string

const (
	JobLevelEntry     JobLevel = "Entry"
	JobLevelMid       JobLevel = "Mid"
	JobLevelSenior    JobLevel = "Senior"
	JobLevelExecutive JobLevel = "Executive"
)

// Job is a posted position. ID is unique and immutable once assigned.
// Posted is a display label ("2 days ago", "Just now"), not a timestamp.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Type         JobType  `json:"type"`
	Level        JobLevel `json:"level"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	Posted       string   `json:"posted"`
	Featured     bool     `json:"featured"`
	Remote       bool     `json:"remote"`
	Category     string   `json:"category"`
	EmployerID   string   `json:"employerId"`
}

// JobDraft is the input for posting a job, prior to id and Posted
// assignment. Featured is intentionally absent: new postings are never
// auto-featured.
type JobDraft struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Type         JobType  `json:"type"`
	Level        JobLevel `json:"level"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	Remote       bool     `json:"remote"`
	Category     string   `json:"category"`
	EmployerID   string   `json:"employerId"`
}
