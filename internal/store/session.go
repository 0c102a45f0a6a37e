// internal/store/session.go
package store

import "jobboard/internal/models"

// SetCurrentUser installs u as the session user. Sign-in is mocked; no
// credentials are verified anywhere.
func (s *Store) SetCurrentUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = u
	s.logger.Info("session user set", map[string]interface{}{
		"userId": u.UserID(),
		"role":   u.UserRole(),
	})
}

// ClearCurrentUser signs the session user out.
func (s *Store) ClearCurrentUser() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = nil
}

// CurrentUser returns the session user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return nil, false
	}
	return s.currentUser, true
}

// SelectJob records the job id the view is focused on. An empty id
// clears the selection.
func (s *Store) SelectJob(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedJobID = id
}

// SelectedJob returns the focused job id, if any.
func (s *Store) SelectedJob() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedJobID, s.selectedJobID != ""
}

// SetActivePage records the named page the view is showing.
func (s *Store) SetActivePage(page string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePage = page
}

// ActivePage returns the named page the view is showing.
func (s *Store) ActivePage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activePage
}

func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = q
}

func (s *Store) SetLocationFilter(loc string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locationFilter = loc
}

func (s *Store) SetTypeFilter(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.typeFilter = t
}
