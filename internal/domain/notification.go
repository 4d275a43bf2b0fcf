package domain

import "time"

// Notification is a one-way message delivered to a user's inbox. CreatedBy is
// nil for system-generated notifications.
type Notification struct {
	ID         string
	ReceiverID string
	Title      string
	Message    string
	IsRead     bool
	CreatedBy  *string
	CreatedAt  time.Time
}
