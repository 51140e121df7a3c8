package entity

import "time"

// NotificationPriority signals how loudly the client should surface an
// in-app notification.
type NotificationPriority string

const (
	PriorityHigh   NotificationPriority = "high"
	PriorityNormal NotificationPriority = "normal"
)

// Notification is one persisted in-app notification for one recipient.
// It is created only by the fan-out engine and mutated only to flip IsRead.
type Notification struct {
	ID         string               `json:"id"`
	UserID     string               `json:"user_id"` // Recipient staff id.
	Message    string               `json:"message"`
	RelatedURL string               `json:"related_url"` // Deep link into the dashboard.
	IsRead     bool                 `json:"is_read"`
	Timestamp  time.Time            `json:"timestamp"`
	Priority   NotificationPriority `json:"priority"`
}
