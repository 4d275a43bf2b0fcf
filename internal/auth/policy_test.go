package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
)

func TestStudentPermissions(t *testing.T) {
	assert.True(t, Can(domain.RoleStudent, ActionCreateTicket))
	assert.True(t, Can(domain.RoleStudent, ActionViewOwnTickets))
	assert.True(t, Can(domain.RoleStudent, ActionViewNotifications))

	// students never touch ticket state or other accounts
	assert.False(t, Can(domain.RoleStudent, ActionChangeStatus))
	assert.False(t, Can(domain.RoleStudent, ActionResolveTicket))
	assert.False(t, Can(domain.RoleStudent, ActionDeleteTicket))
	assert.False(t, Can(domain.RoleStudent, ActionAssignTicket))
	assert.False(t, Can(domain.RoleStudent, ActionManageUsers))
	assert.False(t, Can(domain.RoleStudent, ActionSendNotification))
}

func TestStaffPermissions(t *testing.T) {
	assert.True(t, Can(domain.RoleStaff, ActionViewAssigned))
	assert.True(t, Can(domain.RoleStaff, ActionChangeStatus))
	assert.True(t, Can(domain.RoleStaff, ActionResolveTicket))
	assert.True(t, Can(domain.RoleStaff, ActionCloseTicket))

	assert.False(t, Can(domain.RoleStaff, ActionCreateTicket))
	assert.False(t, Can(domain.RoleStaff, ActionChangePriority))
	assert.False(t, Can(domain.RoleStaff, ActionAssignTicket))
	assert.False(t, Can(domain.RoleStaff, ActionDeleteTicket))
	assert.False(t, Can(domain.RoleStaff, ActionViewAllTickets))
}

func TestAdminPermissions(t *testing.T) {
	for _, action := range []Action{
		ActionCreateTicket,
		ActionViewAllTickets,
		ActionViewUnassigned,
		ActionChangeStatus,
		ActionChangePriority,
		ActionAssignTicket,
		ActionDeleteTicket,
		ActionRegisterStaff,
		ActionRegisterStudent,
		ActionManageUsers,
		ActionDeleteUser,
		ActionSendNotification,
	} {
		assert.True(t, Can(domain.RoleAdmin, action), "admin should be allowed %s", action)
	}
}

func TestCanUnknownRole(t *testing.T) {
	assert.False(t, Can(domain.Role("GHOST"), ActionCreateTicket))
}

func TestPermissionsReturnsGrantedSet(t *testing.T) {
	actions := Permissions(domain.RoleStudent)
	assert.Len(t, actions, 3)
	for _, action := range actions {
		assert.True(t, Can(domain.RoleStudent, action))
	}
}
