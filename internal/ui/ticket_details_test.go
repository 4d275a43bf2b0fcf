package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/internal/service"
)

func seedTicket(t *testing.T, app *App, creator *domain.User) *domain.Ticket {
	t.Helper()
	ticket, err := app.Tickets.CreateTicket(app.Ctx, creator, service.CreateTicketInput{
		Title:       "WiFi down",
		Description: "No connectivity in dorm B",
		Priority:    domain.TicketPriorityHigh,
		Category:    "Technical",
	})
	require.NoError(t, err)
	return ticket
}

func adminUser(t *testing.T, app *App) *domain.User {
	t.Helper()
	// no self-service admin registration; build the account directly
	admin := registerUser(t, app, "root", domain.RoleStudent)
	admin.Role = domain.RoleAdmin
	return admin
}

func TestTicketDetailsMenuFilteredByRole(t *testing.T) {
	app := newTestApp(t)
	student := registerUser(t, app, "alice", domain.RoleStudent)
	staff := registerUser(t, app, "dana", domain.RoleStaff)
	ticket := seedTicket(t, app, student)

	app.Session.SetCurrentUser(staff)
	surface := &recordingSurface{}
	NewTicketDetailsPage(app, ticket.ID, nil).Show(surface, script("0"))

	require.Len(t, surface.bodies, 1)
	assert.Contains(t, surface.bodies[0], "Change Status")
	assert.Contains(t, surface.bodies[0], "Resolve Ticket")
	assert.NotContains(t, surface.bodies[0], "Delete Ticket")
	assert.NotContains(t, surface.bodies[0], "Assign to Staff")

	app.Session.SetCurrentUser(adminUser(t, app))
	surface = &recordingSurface{}
	NewTicketDetailsPage(app, ticket.ID, nil).Show(surface, script("0"))

	require.Len(t, surface.bodies, 1)
	assert.Contains(t, surface.bodies[0], "Delete Ticket")
	assert.Contains(t, surface.bodies[0], "Assign to Staff")
	assert.Contains(t, surface.bodies[0], "Change Priority")
}

func TestTicketDetailsBackReturnsPrevious(t *testing.T) {
	app := newTestApp(t)
	student := registerUser(t, app, "alice", domain.RoleStudent)
	ticket := seedTicket(t, app, student)
	app.Session.SetCurrentUser(student)

	previous := NewViewTicketsPage(app, FilterOpen, false)
	next := NewTicketDetailsPage(app, ticket.ID, previous).Show(&recordingSurface{}, script("0"))
	assert.Same(t, Page(previous), next)
}

func TestTicketDetailsInvalidStatusSelfLoops(t *testing.T) {
	app := newTestApp(t)
	student := registerUser(t, app, "alice", domain.RoleStudent)
	staff := registerUser(t, app, "dana", domain.RoleStaff)
	ticket := seedTicket(t, app, student)
	app.Session.SetCurrentUser(staff)

	surface := &recordingSurface{}
	page := NewTicketDetailsPage(app, ticket.ID, nil)
	// option 1 for staff is Change Status
	next := page.Show(surface, script("1", "BOGUS"))
	assert.Same(t, Page(page), next)
	assert.Contains(t, surface.messages, "[X] Invalid status.")

	unchanged, err := app.Tickets.FindByID(app.Ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, unchanged.Status)
}

func TestTicketDetailsDeleteConfirm(t *testing.T) {
	app := newTestApp(t)
	student := registerUser(t, app, "alice", domain.RoleStudent)
	ticket := seedTicket(t, app, student)
	app.Session.SetCurrentUser(adminUser(t, app))

	previous := NewViewTicketsPage(app, FilterAll, false)
	page := NewTicketDetailsPage(app, ticket.ID, previous)

	// admin option 6 is Delete Ticket; "no" aborts
	next := page.Show(&recordingSurface{}, script("6", "no"))
	assert.Same(t, Page(page), next)
	_, err := app.Tickets.FindByID(app.Ctx, ticket.ID)
	require.NoError(t, err)

	next = page.Show(&recordingSurface{}, script("6", "yes"))
	assert.Same(t, Page(previous), next)
	_, err = app.Tickets.FindByID(app.Ctx, ticket.ID)
	assert.Error(t, err)
}

func TestNotificationsMarkAllRead(t *testing.T) {
	app := newTestApp(t)
	student := registerUser(t, app, "alice", domain.RoleStudent)
	app.Session.SetCurrentUser(student)

	for i := 0; i < 2; i++ {
		_, err := app.Notifications.Send(app.Ctx, student.ID, "Notice", "msg", nil)
		require.NoError(t, err)
	}

	surface := &recordingSurface{}
	page := NewNotificationsPage(app)
	next := page.Show(surface, script("1"))
	assert.Same(t, Page(page), next)
	assert.Contains(t, surface.lastMessage(), "2 notification(s) marked as read")
	assert.Equal(t, 0, app.Notifications.UnreadCount(app.Ctx, student.ID))
}

func TestNotificationDetailMarksRead(t *testing.T) {
	app := newTestApp(t)
	student := registerUser(t, app, "alice", domain.RoleStudent)
	app.Session.SetCurrentUser(student)

	_, err := app.Notifications.Send(app.Ctx, student.ID, "Maintenance", "Offline tonight", nil)
	require.NoError(t, err)

	surface := &recordingSurface{}
	NewNotificationsPage(app).Show(surface, script("2", "1"))
	assert.Contains(t, surface.messages, "Maintenance")
	assert.Contains(t, surface.messages, "Offline tonight")
	assert.Equal(t, 0, app.Notifications.UnreadCount(app.Ctx, student.ID))
}
