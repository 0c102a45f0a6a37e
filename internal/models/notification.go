// internal/models/notification.go
package models

// NotificationKind classifies a notification for presentation.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyInfo    NotificationKind = "info"
	NotifyError   NotificationKind = "error"
)

// Notification is an in-process message emitted as a side effect of a
// successful mutation. The collection is most-recent-first and unbounded.
type Notification struct {
	ID      string           `json:"id"`
	Message string           `json:"message"`
	Kind    NotificationKind `json:"type"`
	Read    bool             `json:"read"`
}
