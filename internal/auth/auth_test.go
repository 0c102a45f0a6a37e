// internal/auth/auth_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/common/logger"
	"jobboard/internal/models"
	"jobboard/internal/store"

	apperrors "jobboard/internal/common/errors"
)

func TestSignIn_Candidate(t *testing.T) {
	s := store.New(logger.NewNoOpLogger())

	u, err := SignIn(s, Input{
		Email:    "jane@example.com",
		Name:     "Jane Smith",
		Password: "ignored",
		Role:     models.RoleCandidate,
		Title:    "Backend Developer",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleCandidate, u.UserRole())
	assert.NotEmpty(t, u.UserID())

	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u.UserID(), current.UserID())
}

func TestSignIn_Employer(t *testing.T) {
	s := store.New(logger.NewNoOpLogger())

	u, err := SignIn(s, Input{
		Email:   "hr@techcorp.com",
		Name:    "Sarah Johnson",
		Role:    models.RoleEmployer,
		Company: "TechCorp",
		Title:   "HR Manager",
	})
	require.NoError(t, err)

	emp, ok := u.(models.Employer)
	require.True(t, ok)
	assert.Equal(t, "TechCorp", emp.Company)
}

func TestSignIn_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"malformed email", Input{Email: "not-an-email", Name: "A", Role: models.RoleCandidate}},
		{"blank name", Input{Email: "a@b.com", Name: "   ", Role: models.RoleCandidate}},
		{"unknown role", Input{Email: "a@b.com", Name: "A", Role: models.Role("admin")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New(logger.NewNoOpLogger())

			_, err := SignIn(s, tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			_, ok := s.CurrentUser()
			assert.False(t, ok, "failed sign-in must not install a session user")
		})
	}
}

func TestSignOut(t *testing.T) {
	s := store.New(logger.NewNoOpLogger())

	_, err := SignIn(s, Input{Email: "a@b.com", Name: "A", Role: models.RoleCandidate})
	require.NoError(t, err)

	SignOut(s)
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestSignIn_DistinctIDsForRepeatedForms(t *testing.T) {
	s := store.New(logger.NewNoOpLogger())
	in := Input{Email: "a@b.com", Name: "A", Role: models.RoleCandidate}

	first, err := SignIn(s, in)
	require.NoError(t, err)
	second, err := SignIn(s, in)
	require.NoError(t, err)

	assert.NotEqual(t, first.UserID(), second.UserID())
}
