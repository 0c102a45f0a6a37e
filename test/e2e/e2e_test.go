// test/e2e/e2e_test.go

// End-to-end scenarios over a store seeded with the demo data: the full
// browse → filter → apply → review flow with no mocks in between.
package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/auth"
	"jobboard/internal/common/logger"
	"jobboard/internal/dashboard"
	"jobboard/internal/models"
	"jobboard/internal/query"
	"jobboard/internal/seed"
	"jobboard/internal/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(logger.NewTestLogger(t))
	s.Seed(seed.Jobs())
	return s
}

func TestSeededSearch_FullTimeMaharashtra(t *testing.T) {
	s := seededStore(t)

	got := query.Search(s.ListJobs(), query.FilterSpec{
		Type:     "Full-time",
		Location: "Maharashtra",
		SortBy:   "none-requested",
	})

	// Exactly the Mumbai and Pune postings, in original relative order.
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestSeededSearch_ThroughStoreFilters(t *testing.T) {
	s := seededStore(t)

	s.SetTypeFilter("Full-time")
	s.SetLocationFilter("Maharashtra")

	got := s.SearchJobs(query.SortRecent)
	require.Len(t, got, 2)
	// Both results are featured, so the partition keeps seed order.
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestCandidateJourney(t *testing.T) {
	s := seededStore(t)

	// Sign in, browse, focus a posting, apply.
	candidate, err := auth.SignIn(s, auth.Input{
		Email: "john.doe@email.com",
		Name:  "John Doe",
		Role:  models.RoleCandidate,
	})
	require.NoError(t, err)

	s.SetActivePage("jobs")
	s.SetSearchQuery("frontend")
	results := s.SearchJobs(query.SortRecent)
	require.NotEmpty(t, results)

	s.SelectJob(results[0].ID)
	selected, ok := s.SelectedJob()
	require.True(t, ok)

	job, err := s.JobByID(selected)
	require.NoError(t, err)

	app, err := s.SubmitApplication(models.ApplicationDraft{
		JobID:       job.ID,
		CandidateID: candidate.UserID(),
		CoverLetter: "My experience matches your stack.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, app.Status)

	overview := dashboard.ForCandidate(s, candidate.UserID())
	require.Len(t, overview.Applications, 1)
	assert.Equal(t, job.ID, overview.Applications[0].Job.ID)

	notifs := s.ListNotifications()
	require.NotEmpty(t, notifs)
	assert.Equal(t, "Application submitted successfully!", notifs[0].Message)
}

func TestEmployerJourney(t *testing.T) {
	s := seededStore(t)

	employer, err := auth.SignIn(s, auth.Input{
		Email:   "hr@techcorp.com",
		Name:    "Sarah Johnson",
		Role:    models.RoleEmployer,
		Company: "TechCorp",
	})
	require.NoError(t, err)

	posted, err := s.PostJob(models.JobDraft{
		Title:        "Site Reliability Engineer",
		Company:      "TechCorp",
		Location:     "Mumbai, Maharashtra",
		Type:         models.JobTypeFullTime,
		Level:        models.JobLevelSenior,
		Salary:       "₹14,00,000 - ₹18,00,000",
		Requirements: []string{"", "On-call experience"},
		EmployerID:   employer.UserID(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"On-call experience"}, posted.Requirements)
	assert.Equal(t, posted.ID, s.ListJobs()[0].ID, "fresh posting lists first")

	// A candidate applies; the employer reviews and moves the status.
	app, err := s.SubmitApplication(models.ApplicationDraft{
		JobID:       posted.ID,
		CandidateID: "user1",
		CoverLetter: "Keen to keep your systems up.",
	})
	require.NoError(t, err)

	require.NoError(t, s.TransitionApplication(app.ID, models.StatusReviewing))
	require.NoError(t, s.TransitionApplication(app.ID, models.StatusAccepted))

	overview := dashboard.ForEmployer(s, employer.UserID())
	require.Len(t, overview.Jobs, 1)
	assert.Equal(t, 1, overview.ApplicantsByJob[posted.ID])
	assert.Equal(t, 1, overview.StatusCounts[models.StatusAccepted])
}

func TestSignOutEndsSession(t *testing.T) {
	s := seededStore(t)

	s.SetCurrentUser(seed.DemoCandidate())
	_, ok := s.CurrentUser()
	require.True(t, ok)

	auth.SignOut(s)
	_, ok = s.CurrentUser()
	assert.False(t, ok)
}
