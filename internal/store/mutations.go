// internal/store/mutations.go
package store

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"jobboard/internal/common/metrics"
	"jobboard/internal/models"

	apperrors "jobboard/internal/common/errors"
)

const defaultResumeFilename = "resume.pdf"

// SubmitApplication validates the draft, stamps id, applied date, and
// the pending status, appends the record to the applications collection,
// and emits one success notification. Referential integrity of JobID and
// CandidateID against the store is not checked; the caller is expected
// to hold both.
func (s *Store) SubmitApplication(draft models.ApplicationDraft) (models.Application, error) {
	if err := validation.ValidateStruct(&draft,
		validation.Field(&draft.JobID, validation.Required),
		validation.Field(&draft.CandidateID, validation.Required),
		validation.Field(&draft.CoverLetter, validation.Required),
	); err != nil {
		metrics.MutationsRejected.WithLabelValues(string(apperrors.ErrCodeValidationFailed)).Inc()
		return models.Application{}, apperrors.NewValidationError(err.Error())
	}

	resume := draft.Resume
	if resume == "" {
		resume = defaultResumeFilename
	}

	app := models.Application{
		ID:          uuid.New().String(),
		JobID:       draft.JobID,
		CandidateID: draft.CandidateID,
		Status:      models.StatusPending,
		AppliedDate: time.Now().UTC().Format(time.RFC3339),
		CoverLetter: draft.CoverLetter,
		Resume:      resume,
		Notes:       draft.Notes,
	}

	s.mu.Lock()
	s.applications = append(s.applications, app)
	s.mu.Unlock()

	metrics.ApplicationsSubmitted.Inc()
	s.logger.Info("application submitted", map[string]interface{}{
		"applicationId": app.ID,
		"jobId":         app.JobID,
		"candidateId":   app.CandidateID,
	})

	s.PushNotification("Application submitted successfully!", models.NotifySuccess)
	return app, nil
}

// PostJob validates the draft, strips blank requirement and benefit
// entries, stamps id and the "Just now" label, and prepends the posting
// so it lists first regardless of sort. New postings are never featured.
func (s *Store) PostJob(draft models.JobDraft) (models.Job, error) {
	if err := validation.ValidateStruct(&draft,
		validation.Field(&draft.Title, validation.Required),
		validation.Field(&draft.Company, validation.Required),
		validation.Field(&draft.Location, validation.Required),
	); err != nil {
		metrics.MutationsRejected.WithLabelValues(string(apperrors.ErrCodeValidationFailed)).Inc()
		return models.Job{}, apperrors.NewValidationError(err.Error())
	}

	job := models.Job{
		ID:           uuid.New().String(),
		Title:        draft.Title,
		Company:      draft.Company,
		Location:     draft.Location,
		Type:         draft.Type,
		Level:        draft.Level,
		Salary:       draft.Salary,
		Description:  draft.Description,
		Requirements: stripBlank(draft.Requirements),
		Benefits:     stripBlank(draft.Benefits),
		Posted:       "Just now",
		Featured:     false,
		Remote:       draft.Remote,
		Category:     draft.Category,
		EmployerID:   draft.EmployerID,
	}

	s.mu.Lock()
	s.jobs = append([]models.Job{job}, s.jobs...)
	s.mu.Unlock()

	metrics.JobsPosted.Inc()
	s.logger.Info("job posted", map[string]interface{}{
		"jobId":      job.ID,
		"title":      job.Title,
		"employerId": job.EmployerID,
	})

	s.PushNotification("Job posted successfully!", models.NotifySuccess)
	return job, nil
}

// PushNotification stamps id and the unread flag and prepends the
// notification. No dedup, no expiry, no cap on growth.
func (s *Store) PushNotification(message string, kind models.NotificationKind) models.Notification {
	n := models.Notification{
		ID:      uuid.New().String(),
		Message: message,
		Kind:    kind,
		Read:    false,
	}

	s.mu.Lock()
	s.notifications = append([]models.Notification{n}, s.notifications...)
	s.mu.Unlock()

	metrics.NotificationsPushed.WithLabelValues(string(kind)).Inc()
	return n
}

// MarkNotificationRead flips the read flag of one notification.
func (s *Store) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return nil
		}
	}
	return apperrors.NewNotificationNotFoundError(id)
}

// TransitionApplication overwrites an application's status. Any status
// may follow any other; which transitions a caller should be allowed to
// make is left to a future revision.
func (s *Store) TransitionApplication(id string, next models.ApplicationStatus) error {
	if !models.ValidStatus(next) {
		metrics.MutationsRejected.WithLabelValues(string(apperrors.ErrCodeInvalidStatus)).Inc()
		return apperrors.NewInvalidStatusError(string(next))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.applications {
		if s.applications[i].ID == id {
			prev := s.applications[i].Status
			s.applications[i].Status = next
			s.logger.Info("application status changed", map[string]interface{}{
				"applicationId": id,
				"from":          prev,
				"to":            next,
			})
			return nil
		}
	}

	metrics.MutationsRejected.WithLabelValues(string(apperrors.ErrCodeApplicationNotFound)).Inc()
	return apperrors.NewApplicationNotFoundError(id)
}

// stripBlank drops empty and whitespace-only entries, preserving order.
func stripBlank(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			out = append(out, e)
		}
	}
	return out
}
