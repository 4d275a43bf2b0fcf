package ui

// ForgotPasswordPage resets a student's password by email. Staff and admin
// accounts cannot be reset here.
type ForgotPasswordPage struct {
	app *App
}

// NewForgotPasswordPage constructs the page.
func NewForgotPasswordPage(app *App) *ForgotPasswordPage {
	return &ForgotPasswordPage{app: app}
}

func (p *ForgotPasswordPage) Name() string { return "forgot_password" }

func (p *ForgotPasswordPage) Show(surface Surface, input Input) Page {
	info := `Note: Password reset is only available
for student accounts.

Enter '0' at any prompt to cancel.`

	surface.Refresh("Forgot Password", info, "")

	email := input.ReadLine("Enter your registered email:")
	if email == "0" {
		return NewLoginPage(p.app)
	}

	newPassword := input.ReadLine("Enter new password:")
	if newPassword == "0" {
		return NewLoginPage(p.app)
	}
	confirm := input.ReadLine("Confirm new password:")
	if confirm == "0" {
		return NewLoginPage(p.app)
	}
	if newPassword != confirm {
		surface.Message("[X] Passwords do not match. Please try again.")
		input.Pause()
		return p
	}

	if err := p.app.Users.ResetPassword(p.app.Ctx, email, newPassword); err != nil {
		p.app.Metrics.RecordAction("reset_password", false)
		surface.Message("[X] Password reset failed.")
		surface.Message("    Make sure the email belongs to a student account.")
		input.Pause()
		return p
	}

	p.app.Metrics.RecordAction("reset_password", true)
	surface.Message("[OK] Password reset successful!")
	surface.Message("     You can now login with your new password.")
	input.Pause()
	return NewLoginPage(p.app)
}
