package events

import (
	"time"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
)

// EventType enumerates lifecycle events published by the services.
type EventType string

const (
	EventTicketCreated         EventType = "ticket.created"
	EventTicketStatusChanged   EventType = "ticket.status_changed"
	EventTicketPriorityChanged EventType = "ticket.priority_changed"
	EventTicketAssigned        EventType = "ticket.assigned"
	EventTicketDeleted         EventType = "ticket.deleted"
	EventNotificationSent      EventType = "notification.sent"
)

// Event is the envelope published through the dispatcher.
type Event struct {
	ID        string
	Type      EventType
	TicketID  string
	ActorID   string
	Timestamp time.Time
	Payload   any
}

// TicketCreatedPayload describes a new ticket.
type TicketCreatedPayload struct {
	Title    string
	Priority domain.TicketPriority
	Category string
}

// TicketStatusChangedPayload describes a status transition.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus
	NewStatus domain.TicketStatus
}

// TicketPriorityChangedPayload describes a priority change.
type TicketPriorityChangedPayload struct {
	OldPriority domain.TicketPriority
	NewPriority domain.TicketPriority
}

// TicketAssignedPayload describes an assignment.
type TicketAssignedPayload struct {
	StaffID string
}

// NotificationSentPayload describes a delivered notification batch.
type NotificationSentPayload struct {
	Receivers int
	Delivered int
}
