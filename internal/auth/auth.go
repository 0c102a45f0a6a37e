// internal/auth/auth.go

// Package auth builds session users for the mocked sign-in flow. No
// credential is ever verified; the password field exists only so callers
// can pass the form through unchanged.
package auth

import (
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"jobboard/internal/models"
	"jobboard/internal/store"

	apperrors "jobboard/internal/common/errors"
)

// Input is the sign-up / sign-in form payload.
type Input struct {
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Password string      `json:"password"` // accepted and ignored
	Role     models.Role `json:"role"`
	Company  string      `json:"company,omitempty"` // employer accounts
	Title    string      `json:"title,omitempty"`
}

// SignIn constructs a user for the given form, installs it as the
// session user, and returns it. The only checks are shape checks: a
// plausible email, a non-empty name, and a known role.
func SignIn(s *store.Store, in Input) (models.User, error) {
	u, err := newUser(in)
	if err != nil {
		return nil, err
	}
	s.SetCurrentUser(u)
	return u, nil
}

// SignOut clears the session user.
func SignOut(s *store.Store) {
	s.ClearCurrentUser()
}

func newUser(in Input) (models.User, error) {
	if !govalidator.IsEmail(in.Email) {
		return nil, apperrors.NewValidationError("email: must be a valid email address")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewValidationError("name: cannot be blank")
	}

	switch in.Role {
	case models.RoleCandidate:
		return models.Candidate{
			ID:    uuid.New().String(),
			Email: in.Email,
			Name:  in.Name,
			Title: in.Title,
		}, nil
	case models.RoleEmployer:
		return models.Employer{
			ID:      uuid.New().String(),
			Email:   in.Email,
			Name:    in.Name,
			Company: in.Company,
			Title:   in.Title,
		}, nil
	default:
		return nil, apperrors.NewValidationError("role: must be candidate or employer")
	}
}
