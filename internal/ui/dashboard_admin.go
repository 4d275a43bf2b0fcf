package ui

import (
	"fmt"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
)

// AdminDashboardPage is the admin main menu. Its option set is the full
// admin action set; the other dashboards never construct these sub-pages.
type AdminDashboardPage struct {
	app *App
}

// NewAdminDashboardPage constructs the page.
func NewAdminDashboardPage(app *App) *AdminDashboardPage {
	return &AdminDashboardPage{app: app}
}

func (p *AdminDashboardPage) Name() string { return "dashboard_admin" }

func (p *AdminDashboardPage) Show(surface Surface, input Input) Page {
	user := p.app.Session.CurrentUser()
	if user == nil {
		return NewLoginPage(p.app)
	}
	unread := p.app.Notifications.UnreadCount(p.app.Ctx, user.ID)

	menu := fmt.Sprintf(`Welcome, %s (Admin)

TICKET MANAGEMENT:
[1]  View All Tickets
[2]  View Open Tickets
[3]  View Resolved Tickets
[4]  View Closed Tickets
[5]  View Unassigned Tickets
[6]  Create New Ticket

USER MANAGEMENT:
[7]  Register Staff
[8]  Register Student
[9]  View/Manage Students
[10] View/Manage Staff

OTHER:
[11] Send Notification
[12] My Notifications%s
[0]  Logout`, user.Name, unreadBadge(unread))

	surface.Refresh("Admin Dashboard", menu, "Select Option")
	choice := input.ReadInt("")

	switch choice {
	case 1:
		return NewViewTicketsPage(p.app, FilterAll, false)
	case 2:
		return NewViewTicketsPage(p.app, FilterOpen, false)
	case 3:
		return NewViewTicketsPage(p.app, FilterResolved, false)
	case 4:
		return NewViewTicketsPage(p.app, FilterClosed, false)
	case 5:
		return NewViewTicketsPage(p.app, FilterUnassigned, false)
	case 6:
		return NewCreateTicketPage(p.app)
	case 7:
		return NewRegisterUserPage(p.app, domain.RoleStaff)
	case 8:
		return NewRegisterUserPage(p.app, domain.RoleStudent)
	case 9:
		return NewManageUsersPage(p.app, domain.RoleStudent)
	case 10:
		return NewManageUsersPage(p.app, domain.RoleStaff)
	case 11:
		return NewSendNotificationPage(p.app)
	case 12:
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
