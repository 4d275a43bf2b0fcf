package ui

import (
	"fmt"
	"strings"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/pkg/util"
)

// UserDetailsPage lets the admin update or delete one account. Username,
// password and role stay fixed; there is no role-change operation.
type UserDetailsPage struct {
	app      *App
	userID   string
	listRole domain.Role
}

// NewUserDetailsPage constructs the page. listRole selects which manage list
// to return to.
func NewUserDetailsPage(app *App, userID string, listRole domain.Role) *UserDetailsPage {
	return &UserDetailsPage{app: app, userID: userID, listRole: listRole}
}

func (p *UserDetailsPage) Name() string { return "user_details" }

func (p *UserDetailsPage) Show(surface Surface, input Input) Page {
	if p.app.Session.CurrentUser() == nil {
		return NewLoginPage(p.app)
	}

	user, err := p.app.Users.FindByID(p.app.Ctx, p.userID)
	if err != nil {
		surface.Message("[X] User not found.")
		input.Pause()
		return NewManageUsersPage(p.app, p.listRole)
	}

	menu := `Actions:
1. Update User Information
2. Delete User
0. Back`

	surface.Refresh("User Details", formatUserDetails(user)+"\n\n"+menu, "Select Action")
	choice := input.ReadInt("")

	switch choice {
	case 1:
		return p.updateUser(surface, input, user)
	case 2:
		return p.deleteUser(surface, input, user)
	case 0:
		return NewManageUsersPage(p.app, p.listRole)
	default:
		surface.Message("[!] Invalid option.")
		input.Pause()
		return p
	}
}

func (p *UserDetailsPage) updateUser(surface Surface, input Input, user *domain.User) Page {
	surface.Message("Update User Information")
	surface.Message("(Enter '-' to keep current value)")

	newName := input.ReadLine(fmt.Sprintf("New Name [%s]:", user.Name))
	if newName == "-" {
		newName = user.Name
	}
	newEmail := input.ReadLine(fmt.Sprintf("New Email [%s]:", user.Email))
	if newEmail == "-" {
		newEmail = user.Email
	}

	if _, err := p.app.Users.UpdateUser(p.app.Ctx, user.ID, newName, newEmail); err != nil {
		p.app.Metrics.RecordAction("update_user", false)
		if util.IsConflict(err) {
			surface.Message("[X] Email already in use.")
		} else {
			surface.Message("[X] Failed to update user.")
		}
		input.Pause()
		return p
	}

	p.app.Metrics.RecordAction("update_user", true)
	surface.Message("[OK] User updated successfully.")
	input.Pause()
	return p
}

func (p *UserDetailsPage) deleteUser(surface Surface, input Input, user *domain.User) Page {
	confirm := input.ReadLine(fmt.Sprintf("Are you sure you want to delete %s? (yes/no):", user.Name))
	if !strings.EqualFold(confirm, "yes") {
		surface.Message("Deletion cancelled.")
		input.Pause()
		return p
	}

	if err := p.app.Users.DeleteUser(p.app.Ctx, user.ID); err != nil {
		p.app.Metrics.RecordAction("delete_user", false)
		surface.Message("[X] Failed to delete user.")
		input.Pause()
		return p
	}

	p.app.Metrics.RecordAction("delete_user", true)
	surface.Message("[OK] User deleted successfully.")
	input.Pause()
	return NewManageUsersPage(p.app, p.listRole)
}
