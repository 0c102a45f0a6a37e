// internal/dashboard/candidate.go
package dashboard

import (
	"jobboard/internal/models"
	"jobboard/internal/store"
)

// savedJobsLimit caps the mock "saved jobs" list shown on the candidate
// dashboard.
const savedJobsLimit = 3

// AppliedJob pairs an application with the posting it targets.
type AppliedJob struct {
	Application models.Application
	Job         models.Job
}

// CandidateOverview is the read model behind the candidate dashboard.
type CandidateOverview struct {
	Applications []AppliedJob
	StatusCounts map[models.ApplicationStatus]int
	SavedJobs    []models.Job
}

// ForCandidate collects candidateID's applications joined with their
// postings. Applications whose job id no longer resolves are skipped,
// matching the view's filter(Boolean) join. Saved jobs are mocked as the
// first featured postings.
func ForCandidate(s *store.Store, candidateID string) CandidateOverview {
	jobs := s.ListJobs()
	apps := s.ListApplications()

	byID := make(map[string]models.Job, len(jobs))
	for _, job := range jobs {
		byID[job.ID] = job
	}

	overview := CandidateOverview{
		StatusCounts: make(map[models.ApplicationStatus]int),
	}

	for _, app := range apps {
		if app.CandidateID != candidateID {
			continue
		}
		job, ok := byID[app.JobID]
		if !ok {
			continue
		}
		overview.Applications = append(overview.Applications, AppliedJob{Application: app, Job: job})
		overview.StatusCounts[app.Status]++
	}

	for _, job := range jobs {
		if job.Featured {
			overview.SavedJobs = append(overview.SavedJobs, job)
			if len(overview.SavedJobs) == savedJobsLimit {
				break
			}
		}
	}

	return overview
}
