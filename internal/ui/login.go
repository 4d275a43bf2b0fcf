package ui

import (
	"fmt"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
)

// LoginPage is the root page. It is the only page that can end the process,
// through the explicit exit option.
type LoginPage struct {
	app *App
}

// NewLoginPage constructs the root page.
func NewLoginPage(app *App) *LoginPage {
	return &LoginPage{app: app}
}

func (p *LoginPage) Name() string { return "login" }

// Show renders the root menu and routes to the role dashboard after a
// successful login. A failed login leaves the session empty and self-loops.
func (p *LoginPage) Show(surface Surface, input Input) Page {
	menu := `1. Login
2. Register (students only)
3. Forgot Password
0. Exit`

	surface.Refresh("Login", menu, "Select Option")
	choice := input.ReadInt("")

	switch choice {
	case 1:
		return p.login(surface, input)
	case 2:
		return NewRegisterPage(p.app)
	case 3:
		return NewForgotPasswordPage(p.app)
	case 0:
		return nil
	default:
		surface.Message("[!] Invalid option. Please try again.")
		input.Pause()
		return p
	}
}

func (p *LoginPage) login(surface Surface, input Input) Page {
	username := input.ReadLine("Username:")
	password := input.ReadLine("Password:")

	user, err := p.app.Users.Login(p.app.Ctx, username, password)
	if err != nil {
		p.app.Metrics.RecordAction("login", false)
		surface.Message("[X] Login failed: invalid username or password.")
		input.Pause()
		return p
	}

	p.app.Session.SetCurrentUser(user)
	p.app.Metrics.RecordAction("login", true)
	surface.Message(fmt.Sprintf("[OK] Login successful! Welcome %s.", user.Name))
	input.Pause()

	return dashboardForRole(p.app, user.Role)
}

// dashboardForRole selects the role-specific dashboard. Each role has its own
// page variant with a distinct reachable sub-graph; there is no shared
// dashboard that checks permissions at runtime.
func dashboardForRole(app *App, role domain.Role) Page {
	switch role {
	case domain.RoleAdmin:
		return NewAdminDashboardPage(app)
	case domain.RoleStaff:
		return NewStaffDashboardPage(app)
	default:
		return NewStudentDashboardPage(app)
	}
}
