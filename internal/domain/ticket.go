package domain

import (
	"fmt"
	"strings"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "OPEN"
	TicketStatusResolved TicketStatus = "RESOLVED"
	TicketStatusClosed   TicketStatus = "CLOSED"
	TicketStatusOnHold   TicketStatus = "ON_HOLD"
)

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
)

// ParseTicketStatus validates a free-text status token. An invalid token is a
// recoverable value; callers report it and re-prompt.
func ParseTicketStatus(raw string) (TicketStatus, error) {
	switch status := TicketStatus(strings.ToUpper(strings.TrimSpace(raw))); status {
	case TicketStatusOpen, TicketStatusResolved, TicketStatusClosed, TicketStatusOnHold:
		return status, nil
	}
	return "", fmt.Errorf("invalid ticket status %q", raw)
}

// ParseTicketPriority validates a free-text priority token.
func ParseTicketPriority(raw string) (TicketPriority, error) {
	switch priority := TicketPriority(strings.ToUpper(strings.TrimSpace(raw))); priority {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return priority, nil
	}
	return "", fmt.Errorf("invalid ticket priority %q", raw)
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Priority    TicketPriority
	Status      TicketStatus
	Category    string
	CreatedBy   string
	AssignedTo  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Unassigned reports whether the ticket has no assignee.
func (t *Ticket) Unassigned() bool {
	return t.AssignedTo == nil || *t.AssignedTo == ""
}
