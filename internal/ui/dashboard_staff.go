package ui

import "fmt"

// StaffDashboardPage is the staff main menu. Staff work their assigned
// tickets; they cannot create, assign or delete.
type StaffDashboardPage struct {
	app *App
}

// NewStaffDashboardPage constructs the page.
func NewStaffDashboardPage(app *App) *StaffDashboardPage {
	return &StaffDashboardPage{app: app}
}

func (p *StaffDashboardPage) Name() string { return "dashboard_staff" }

func (p *StaffDashboardPage) Show(surface Surface, input Input) Page {
	user := p.app.Session.CurrentUser()
	if user == nil {
		return NewLoginPage(p.app)
	}
	unread := p.app.Notifications.UnreadCount(p.app.Ctx, user.ID)

	menu := fmt.Sprintf(`Welcome, %s (Staff)

ASSIGNED TICKETS:
[1] View All Assigned Tickets
[2] View Open Tickets
[3] View Resolved Tickets
[4] View Closed Tickets
[5] View Tickets On Hold

OTHER:
[6] Notifications%s
[0] Logout`, user.Name, unreadBadge(unread))

	surface.Refresh("Staff Dashboard", menu, "Select Option")
	choice := input.ReadInt("")

	switch choice {
	case 1:
		return NewViewTicketsPage(p.app, FilterAll, true)
	case 2:
		return NewViewTicketsPage(p.app, FilterOpen, true)
	case 3:
		return NewViewTicketsPage(p.app, FilterResolved, true)
	case 4:
		return NewViewTicketsPage(p.app, FilterClosed, true)
	case 5:
		return NewViewTicketsPage(p.app, FilterOnHold, true)
	case 6:
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
