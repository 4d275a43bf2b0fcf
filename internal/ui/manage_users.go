package ui

import (
	"fmt"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
)

// ManageUsersPage lists students or staff for the admin. Selecting a user
// opens the detail page.
type ManageUsersPage struct {
	app  *App
	role domain.Role
}

// NewManageUsersPage constructs the page for one account role.
func NewManageUsersPage(app *App, role domain.Role) *ManageUsersPage {
	return &ManageUsersPage{app: app, role: role}
}

func (p *ManageUsersPage) Name() string { return "manage_users" }

func (p *ManageUsersPage) Show(surface Surface, input Input) Page {
	if p.app.Session.CurrentUser() == nil {
		return NewLoginPage(p.app)
	}

	users, err := p.app.Users.ListByRole(p.app.Ctx, p.role)
	if err != nil {
		surface.Message("[X] Could not load users.")
		input.Pause()
		return NewAdminDashboardPage(p.app)
	}

	title := "Manage Students"
	if p.role == domain.RoleStaff {
		title = "Manage Staff"
	}

	body := fmt.Sprintf(`Total: %d user(s)

%s

Enter user number to manage,
or 0 to go back.`, len(users), formatUserList(users))

	surface.Refresh(title, body, "Select User")
	choice := input.ReadInt("")

	if choice == 0 {
		return NewAdminDashboardPage(p.app)
	}
	if choice > 0 && choice <= len(users) {
		return NewUserDetailsPage(p.app, users[choice-1].ID, p.role)
	}

	surface.Message("[!] Invalid selection.")
	input.Pause()
	return p
}
