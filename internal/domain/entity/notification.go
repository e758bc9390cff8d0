package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus is the read state of a notification.
type NotificationStatus string

const (
	// NotificationStatusUnread means the recipient has not seen it yet.
	NotificationStatusUnread NotificationStatus = "unread"
	// NotificationStatusRead means the recipient has opened it.
	NotificationStatusRead NotificationStatus = "read"
)

// Notification represents an in-app notification row addressed to a single
// recipient within a university tenant.
type Notification struct {
	// ID is the unique identifier of the notification.
	ID uuid.UUID `json:"id"`
	// RecipientID is the user the notification is addressed to.
	RecipientID uuid.UUID `json:"recipient_id"`
	// UniversityID is the tenant scope of the notification.
	UniversityID uuid.UUID `json:"university_id"`
	// Message is the human-readable body.
	Message string `json:"message"`
	// LinkTo is an in-app path the notification points at, may be empty.
	LinkTo string `json:"link_to,omitempty"`
	// Status is the read state.
	Status NotificationStatus `json:"status"`
	// CreatedAt is when the notification was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsUnread reports whether the notification has not been read yet.
func (n *Notification) IsUnread() bool {
	return n.Status == NotificationStatusUnread
}

// NotificationEvent is the payload published to the event bus whenever a
// notification row is written, so external consumers can react to it.
type NotificationEvent struct {
	NotificationID uuid.UUID `json:"notification_id"`
	RecipientID    uuid.UUID `json:"recipient_id"`
	UniversityID   uuid.UUID `json:"university_id"`
	Message        string    `json:"message"`
	LinkTo         string    `json:"link_to,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
