package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTicketStatus(t *testing.T) {
	status, err := ParseTicketStatus("open")
	require.NoError(t, err)
	assert.Equal(t, TicketStatusOpen, status)

	status, err = ParseTicketStatus("  On_Hold ")
	require.NoError(t, err)
	assert.Equal(t, TicketStatusOnHold, status)

	_, err = ParseTicketStatus("PENDING")
	assert.Error(t, err)

	_, err = ParseTicketStatus("")
	assert.Error(t, err)
}

func TestParseTicketPriority(t *testing.T) {
	priority, err := ParseTicketPriority("high")
	require.NoError(t, err)
	assert.Equal(t, TicketPriorityHigh, priority)

	_, err = ParseTicketPriority("URGENT")
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("staff")
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, role)

	_, err = ParseRole("SUPERUSER")
	assert.Error(t, err)
}

func TestTicketUnassigned(t *testing.T) {
	ticket := Ticket{}
	assert.True(t, ticket.Unassigned())

	empty := ""
	ticket.AssignedTo = &empty
	assert.True(t, ticket.Unassigned())

	staffID := "staff-1"
	ticket.AssignedTo = &staffID
	assert.False(t, ticket.Unassigned())
}
