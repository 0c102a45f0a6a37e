// internal/models/user.go
package models

// Role distinguishes the two account variants. A user holds exactly one
// role for its lifetime.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
)

// User is the session identity held by the store. It is a closed union:
// Candidate and Employer are the only implementations, so role-specific
// fields cannot be mixed on a single record.
type User interface {
	UserID() string
	UserEmail() string
	UserName() string
	UserRole() Role
}

// Candidate is a job-seeker account.
type Candidate struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Title      string   `json:"title,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Education  string   `json:"education,omitempty"`
	Resume     string   `json:"resume,omitempty"`
}

func (c Candidate) UserID() string    { return c.ID }
func (c Candidate) UserEmail() string { return c.Email }
func (c Candidate) UserName() string  { return c.Name }
func (c Candidate) UserRole() Role    { return RoleCandidate }

// Employer is a hiring account tied to a company.
type Employer struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Title   string `json:"title,omitempty"`
}

func (e Employer) UserID() string    { return e.ID }
func (e Employer) UserEmail() string { return e.Email }
func (e Employer) UserName() string  { return e.Name }
func (e Employer) UserRole() Role    { return RoleEmployer }
