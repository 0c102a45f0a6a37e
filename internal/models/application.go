// internal/models/application.go
package models

// ApplicationStatus is the lifecycle state of a submitted application.
// Every application starts at StatusPending; a transition may overwrite
// it with any other member of the enum.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusInterview ApplicationStatus = "interview"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
)

// ValidStatus reports whether s is a member of the status enum.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusReviewing, StatusInterview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application is a candidate's submission against a job. AppliedDate is
// an RFC 3339 timestamp stamped at creation and never changed. Resume is
// a filename only; the file itself is never read or stored.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	CandidateID string            `json:"candidateId"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate string            `json:"appliedDate"`
	CoverLetter string            `json:"coverLetter"`
	Resume      string            `json:"resume"`
	Notes       string            `json:"notes,omitempty"`
}

// ApplicationDraft is the input for submitting an application, prior to
// id, status, and AppliedDate assignment.
type ApplicationDraft struct {
	JobID       string `json:"jobId"`
	CandidateID string `json:"candidateId"`
	CoverLetter string `json:"coverLetter"`
	Resume      string `json:"resume"`
	Notes       string `json:"notes,omitempty"`
}
