// internal/store/store.go

// Package store owns the job, application, and notification collections
// plus the current session user and UI-selection fields. It is the single
// owner of all mutable state: readers get copies, and every mutation
// entry point lives here. A mutex confines mutation so a concurrent host
// observes each operation either fully applied or not yet started.
package store

import (
	"sync"

	"jobboard/internal/common/logger"
	"jobboard/internal/common/metrics"
	"jobboard/internal/models"
	"jobboard/internal/query"

	apperrors "jobboard/internal/common/errors"
)

// Store is the in-memory record store. Construct with New and pass
// explicitly; there is no package-level instance.
type Store struct {
	mu     sync.Mutex
	logger logger.Logger

	jobs          []models.Job
	applications  []models.Application
	notifications []models.Notification

	currentUser   models.User // nil when signed out
	selectedJobID string
	activePage    string

	searchQuery    string
	locationFilter string
	typeFilter     string
}

func New(log logger.Logger) *Store {
	return &Store{
		logger:     log.WithFields(map[string]interface{}{"component": "store"}),
		activePage: "home",
		typeFilter: query.TypeAll,
	}
}

// Seed replaces the jobs collection with the given postings. Meant for
// startup with static mock data; takes a copy so the caller's slice
// stays independent.
func (s *Store) Seed(jobs []models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = make([]models.Job, len(jobs))
	copy(s.jobs, jobs)

	s.logger.Info("store seeded", map[string]interface{}{
		"jobCount": len(jobs),
	})
}

// ListJobs returns a copy of the jobs collection, newest posting first.
func (s *Store) ListJobs() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// ListApplications returns a copy of the applications collection in
// submission order.
func (s *Store) ListApplications() []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Application, len(s.applications))
	copy(out, s.applications)
	return out
}

// ListNotifications returns a copy of the notifications collection,
// most recent first.
func (s *Store) ListNotifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// JobByID looks up a job by id.
func (s *Store) JobByID(id string) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return models.Job{}, apperrors.NewJobNotFoundError(id)
}

// SearchJobs runs the query engine over a snapshot of the jobs
// collection using the store's filter fields and the given sort mode.
func (s *Store) SearchJobs(sortBy string) []models.Job {
	s.mu.Lock()
	jobs := make([]models.Job, len(s.jobs))
	copy(jobs, s.jobs)
	spec := query.FilterSpec{
		Query:    s.searchQuery,
		Location: s.locationFilter,
		Type:     s.typeFilter,
		SortBy:   sortBy,
	}
	s.mu.Unlock()

	spec = spec.Normalize()
	metrics.SearchesExecuted.WithLabelValues(spec.SortBy).Inc()
	return query.Search(jobs, spec)
}

// Filters returns the current filter fields as a FilterSpec. SortBy is
// left empty; sort mode is page-local, not session state.
func (s *Store) Filters() query.FilterSpec {
	s.mu.Lock()
	defer s.mu.Unlock()

	return query.FilterSpec{
		Query:    s.searchQuery,
		Location: s.locationFilter,
		Type:     s.typeFilter,
	}
}
