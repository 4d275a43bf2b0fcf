package auth

import "github.com/spec-kit/campus-helpdesk/internal/domain"

// Action names an operation a page may offer or perform.
type Action string

const (
	ActionCreateTicket      Action = "ticket.create"
	ActionViewOwnTickets    Action = "ticket.view_own"
	ActionViewAllTickets    Action = "ticket.view_all"
	ActionViewAssigned      Action = "ticket.view_assigned"
	ActionViewUnassigned    Action = "ticket.view_unassigned"
	ActionChangeStatus      Action = "ticket.change_status"
	ActionResolveTicket     Action = "ticket.resolve"
	ActionCloseTicket       Action = "ticket.close"
	ActionChangePriority    Action = "ticket.change_priority"
	ActionAssignTicket      Action = "ticket.assign"
	ActionDeleteTicket      Action = "ticket.delete"
	ActionRegisterStaff     Action = "user.register_staff"
	ActionRegisterStudent   Action = "user.register_student"
	ActionManageUsers       Action = "user.manage"
	ActionDeleteUser        Action = "user.delete"
	ActionSendNotification  Action = "notification.send"
	ActionViewNotifications Action = "notification.view"
)

// rolePermissions is the whole authorization policy: a hard-coded map so the
// permitted action set per role is auditable in one place. Denied actions are
// never rendered; handlers still check defensively.
var rolePermissions = map[domain.Role]map[Action]struct{}{
	domain.RoleStudent: actionSet(
		ActionCreateTicket,
		ActionViewOwnTickets,
		ActionViewNotifications,
	),
	domain.RoleStaff: actionSet(
		ActionViewAssigned,
		ActionChangeStatus,
		ActionResolveTicket,
		ActionCloseTicket,
		ActionViewNotifications,
	),
	domain.RoleAdmin: actionSet(
		ActionCreateTicket,
		ActionViewAllTickets,
		ActionViewUnassigned,
		ActionChangeStatus,
		ActionResolveTicket,
		ActionCloseTicket,
		ActionChangePriority,
		ActionAssignTicket,
		ActionDeleteTicket,
		ActionRegisterStaff,
		ActionRegisterStudent,
		ActionManageUsers,
		ActionDeleteUser,
		ActionSendNotification,
		ActionViewNotifications,
	),
}

func actionSet(actions ...Action) map[Action]struct{} {
	set := make(map[Action]struct{}, len(actions))
	for _, action := range actions {
		set[action] = struct{}{}
	}
	return set
}

// Can reports whether the role is permitted to perform the action.
func Can(role domain.Role, action Action) bool {
	_, ok := rolePermissions[role][action]
	return ok
}

// Permissions returns a copy of the action set granted to a role.
func Permissions(role domain.Role) []Action {
	set := rolePermissions[role]
	actions := make([]Action, 0, len(set))
	for action := range set {
		actions = append(actions, action)
	}
	return actions
}
