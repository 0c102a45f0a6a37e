// internal/dashboard/employer.go

// Package dashboard derives the candidate and employer dashboard read
// models from store state. Everything here is a pure projection; the
// store stays the only owner of the records.
package dashboard

import (
	"jobboard/internal/models"
	"jobboard/internal/store"
)

// EmployerOverview is the read model behind the employer dashboard.
type EmployerOverview struct {
	Jobs            []models.Job
	Applications    []models.Application
	ApplicantsByJob map[string]int
	StatusCounts    map[models.ApplicationStatus]int
}

// ForEmployer collects the postings owned by employerID and every
// application against them.
func ForEmployer(s *store.Store, employerID string) EmployerOverview {
	jobs := s.ListJobs()
	apps := s.ListApplications()

	overview := EmployerOverview{
		ApplicantsByJob: make(map[string]int),
		StatusCounts:    make(map[models.ApplicationStatus]int),
	}

	owned := make(map[string]bool)
	for _, job := range jobs {
		if job.EmployerID == employerID {
			overview.Jobs = append(overview.Jobs, job)
			owned[job.ID] = true
		}
	}

	for _, app := range apps {
		if !owned[app.JobID] {
			continue
		}
		overview.Applications = append(overview.Applications, app)
		overview.ApplicantsByJob[app.JobID]++
		overview.StatusCounts[app.Status]++
	}

	return overview
}
