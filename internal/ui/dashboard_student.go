package ui

import "fmt"

// StudentDashboardPage is the student main menu. Students create tickets and
// view their own; ticket mutation options are never rendered for them.
type StudentDashboardPage struct {
	app *App
}

// NewStudentDashboardPage constructs the page.
func NewStudentDashboardPage(app *App) *StudentDashboardPage {
	return &StudentDashboardPage{app: app}
}

func (p *StudentDashboardPage) Name() string { return "dashboard_student" }

func (p *StudentDashboardPage) Show(surface Surface, input Input) Page {
	user := p.app.Session.CurrentUser()
	if user == nil {
		return NewLoginPage(p.app)
	}
	unread := p.app.Notifications.UnreadCount(p.app.Ctx, user.ID)

	menu := fmt.Sprintf(`Welcome, %s!

[1] Create New Ticket
[2] View My Open Tickets
[3] View My Resolved Tickets
[4] View My Closed Tickets
[5] View Tickets On Hold
[6] View All My Tickets
[7] Notifications%s
[0] Logout`, user.Name, unreadBadge(unread))

	surface.Refresh("Student Dashboard", menu, "Select Option")
	choice := input.ReadInt("")

	switch choice {
	case 1:
		return NewCreateTicketPage(p.app)
	case 2:
		return NewViewTicketsPage(p.app, FilterOpen, false)
	case 3:
		return NewViewTicketsPage(p.app, FilterResolved, false)
	case 4:
		return NewViewTicketsPage(p.app, FilterClosed, false)
	case 5:
		return NewViewTicketsPage(p.app, FilterOnHold, false)
	case 6:
		return NewViewTicketsPage(p.app, FilterAll, false)
	case 7:
		return NewNotificationsPage(p.app)
	case 0:
		p.app.Session.Logout()
		surface.Message("[OK] Logged out successfully.")
		input.Pause()
		return NewLoginPage(p.app)
	default:
		surface.Message("[!] Invalid option. Please try again.")
		input.Pause()
		return p
	}
}
