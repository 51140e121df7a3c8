package model

import (
	"time"

	"forno/internal/domain/entity"
)

// Notification is the Firestore document shape of an in-app notification.
type Notification struct {
	UserID     string    `firestore:"userId"`
	Message    string    `firestore:"message"`
	RelatedURL string    `firestore:"relatedUrl"`
	IsRead     bool      `firestore:"isRead"`
	Timestamp  time.Time `firestore:"timestamp"`
	Priority   string    `firestore:"priority"`
}

// FromNotificationEntity converts a domain notification to its document shape.
func FromNotificationEntity(notification *entity.Notification) *Notification {
	return &Notification{
		UserID:     notification.UserID,
		Message:    notification.Message,
		RelatedURL: notification.RelatedURL,
		IsRead:     notification.IsRead,
		Timestamp:  notification.Timestamp,
		Priority:   string(notification.Priority),
	}
}

// ToEntity converts the document back to a domain notification.
func (m *Notification) ToEntity(id string) *entity.Notification {
	return &entity.Notification{
		ID:         id,
		UserID:     m.UserID,
		Message:    m.Message,
		RelatedURL: m.RelatedURL,
		IsRead:     m.IsRead,
		Timestamp:  m.Timestamp,
		Priority:   entity.NotificationPriority(m.Priority),
	}
}
