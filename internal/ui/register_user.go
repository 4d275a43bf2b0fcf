package ui

import (
	"fmt"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
)

// RegisterUserPage is the admin-side registration flow, parameterized by the
// role of the account being created (staff or student).
type RegisterUserPage struct {
	app  *App
	role domain.Role
}

// NewRegisterUserPage constructs the page.
func NewRegisterUserPage(app *App, role domain.Role) *RegisterUserPage {
	return &RegisterUserPage{app: app, role: role}
}

func (p *RegisterUserPage) Name() string { return "register_user" }

func (p *RegisterUserPage) Show(surface Surface, input Input) Page {
	if p.app.Session.CurrentUser() == nil {
		return NewLoginPage(p.app)
	}

	title := "Register Staff"
	if p.role == domain.RoleStudent {
		title = "Register Student"
	}

	surface.Refresh(title, "Enter '0' at any prompt to cancel.", "")

	username := input.ReadLine("Username:")
	if username == "0" {
		return NewAdminDashboardPage(p.app)
	}
	if available, err := p.app.Users.IsUsernameAvailable(p.app.Ctx, username); err != nil || !available {
		surface.Message("[X] Username already taken.")
		input.Pause()
		return p
	}

	email := input.ReadLine("Email:")
	if email == "0" {
		return NewAdminDashboardPage(p.app)
	}
	if available, err := p.app.Users.IsEmailAvailable(p.app.Ctx, email); err != nil || !available {
		surface.Message("[X] Email already registered.")
		input.Pause()
		return p
	}

	name := input.ReadLine("Full Name:")
	if name == "0" {
		return NewAdminDashboardPage(p.app)
	}

	password := input.ReadLine("Password:")
	if password == "0" {
		return NewAdminDashboardPage(p.app)
	}
	confirm := input.ReadLine("Confirm Password:")
	if confirm == "0" {
		return NewAdminDashboardPage(p.app)
	}
	if password != confirm {
		surface.Message("[X] Passwords do not match.")
		input.Pause()
		return p
	}

	var err error
	var created *domain.User
	if p.role == domain.RoleStudent {
		created, err = p.app.Users.RegisterStudent(p.app.Ctx, username, email, name, password)
	} else {
		created, err = p.app.Users.RegisterStaff(p.app.Ctx, username, email, name, password)
	}
	if err != nil {
		p.app.Metrics.RecordAction("register_user", false)
		surface.Message("[X] Failed to register user.")
		input.Pause()
		return p
	}

	p.app.Metrics.RecordAction("register_user", true)
	surface.Message("[OK] User registered successfully!")
	surface.Message(fmt.Sprintf("     Name: %s", created.Name))
	surface.Message(fmt.Sprintf("     Username: %s", created.Username))
	input.Pause()
	return NewAdminDashboardPage(p.app)
}
