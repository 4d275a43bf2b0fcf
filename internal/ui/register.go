package ui

import "github.com/spec-kit/campus-helpdesk/pkg/util"

// RegisterPage handles student self-registration. Staff accounts are created
// by an admin from the admin dashboard.
type RegisterPage struct {
	app *App
}

// NewRegisterPage constructs the page.
func NewRegisterPage(app *App) *RegisterPage {
	return &RegisterPage{app: app}
}

func (p *RegisterPage) Name() string { return "register" }

func (p *RegisterPage) Show(surface Surface, input Input) Page {
	info := `Note: Only students can register here.
Staff accounts are created by Admin.

Enter '0' at any prompt to cancel.`

	surface.Refresh("Student Registration", info, "")

	username := input.ReadLine("Username:")
	if username == "0" {
		return NewLoginPage(p.app)
	}
	if available, err := p.app.Users.IsUsernameAvailable(p.app.Ctx, username); err != nil || !available {
		surface.Message("[X] Username already taken. Please try another.")
		input.Pause()
		return p
	}

	email := input.ReadLine("Email:")
	if email == "0" {
		return NewLoginPage(p.app)
	}
	if available, err := p.app.Users.IsEmailAvailable(p.app.Ctx, email); err != nil || !available {
		surface.Message("[X] Email already registered. Please use a different email.")
		input.Pause()
		return p
	}

	name := input.ReadLine("Full Name:")
	if name == "0" {
		return NewLoginPage(p.app)
	}

	password := input.ReadLine("Password:")
	if password == "0" {
		return NewLoginPage(p.app)
	}
	confirm := input.ReadLine("Confirm Password:")
	if confirm == "0" {
		return NewLoginPage(p.app)
	}
	if password != confirm {
		surface.Message("[X] Passwords do not match. Please try again.")
		input.Pause()
		return p
	}

	if _, err := p.app.Users.RegisterStudent(p.app.Ctx, username, email, name, password); err != nil {
		p.app.Metrics.RecordAction("register_student", false)
		if util.IsValidation(err) {
			surface.Message("[X] Password must be at least 4 characters long.")
		} else {
			surface.Message("[X] Registration failed. Please try again.")
		}
		input.Pause()
		return p
	}

	p.app.Metrics.RecordAction("register_student", true)
	surface.Message("[OK] Registration successful!")
	surface.Message("     You can now login with your credentials.")
	input.Pause()
	return NewLoginPage(p.app)
}
