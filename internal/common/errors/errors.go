// Package errors provides the standardized error taxonomy for store
// mutations: validation failures and missing-record lookups. Query
// operations never return errors; malformed filters degrade instead.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	ErrCodeJobNotFound          ErrorCode = "JOB_NOT_FOUND"
	ErrCodeApplicationNotFound  ErrorCode = "APPLICATION_NOT_FOUND"
	ErrCodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"
	ErrCodeInvalidStatus        ErrorCode = "INVALID_STATUS"
)

// StandardError represents a structured application error. Every failure
// is local and non-destructive to the store, so there is no
// recoverable/fatal split and no retry metadata.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationError creates a validation error for a rejected draft.
func NewValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Draft validation failed",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewJobNotFoundError creates a lookup error for an unknown job id.
func NewJobNotFoundError(jobID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeJobNotFound,
		Message:   "Job not found",
		Details:   fmt.Sprintf("jobId: %s", jobID),
		Timestamp: time.Now().UTC(),
	}
}

// NewApplicationNotFoundError creates a lookup error for an unknown
// application id.
func NewApplicationNotFoundError(applicationID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicationNotFound,
		Message:   "Application not found",
		Details:   fmt.Sprintf("applicationId: %s", applicationID),
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationNotFoundError creates a lookup error for an unknown
// notification id.
func NewNotificationNotFoundError(notificationID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationNotFound,
		Message:   "Notification not found",
		Details:   fmt.Sprintf("notificationId: %s", notificationID),
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidStatusError creates a validation error for a status value
// outside the application status enum.
func NewInvalidStatusError(status string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidStatus,
		Message:   "Unknown application status",
		Details:   fmt.Sprintf("status: %s", status),
		Timestamp: time.Now().UTC(),
	}
}

// IsValidation reports whether err carries a validation error code.
func IsValidation(err error) bool {
	var se *StandardError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == ErrCodeValidationFailed || se.Code == ErrCodeInvalidStatus
}

// IsNotFound reports whether err carries a not-found error code.
func IsNotFound(err error) bool {
	var se *StandardError
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code {
	case ErrCodeJobNotFound, ErrCodeApplicationNotFound, ErrCodeNotificationNotFound:
		return true
	}
	return false
}
