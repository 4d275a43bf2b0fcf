package ui

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campus-helpdesk/internal/config"
	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/internal/observability"
	"github.com/spec-kit/campus-helpdesk/internal/repository"
	"github.com/spec-kit/campus-helpdesk/internal/service"
	"github.com/spec-kit/campus-helpdesk/internal/session"
)

// scriptedInput feeds a fixed sequence of lines to a page. An exhausted
// script yields "0" so pages unwind the same way console EOF does.
type scriptedInput struct {
	lines []string
}

func script(lines ...string) *scriptedInput {
	return &scriptedInput{lines: lines}
}

func (s *scriptedInput) ReadLine(string) string {
	if len(s.lines) == 0 {
		return "0"
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line
}

func (s *scriptedInput) ReadInt(prompt string) int {
	for {
		value, err := strconv.Atoi(s.ReadLine(prompt))
		if err == nil {
			return value
		}
	}
}

func (s *scriptedInput) Pause() {}

// recordingSurface captures everything a page renders.
type recordingSurface struct {
	headers  []string
	bodies   []string
	messages []string
}

func (r *recordingSurface) Refresh(header, body, _ string) {
	r.headers = append(r.headers, header)
	r.bodies = append(r.bodies, body)
}

func (r *recordingSurface) Message(text string) {
	r.messages = append(r.messages, text)
}

func (r *recordingSurface) lastMessage() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	userRepo := repository.NewMemoryUserRepository()
	ticketRepo := repository.NewMemoryTicketRepository()
	notificationRepo := repository.NewMemoryNotificationRepository(func(ctx context.Context, id string) (bool, error) {
		if _, err := userRepo.GetByID(ctx, id); err != nil {
			return false, nil
		}
		return true, nil
	})

	authCfg := config.AuthConfig{BcryptCost: 4, MinPasswordLength: 4}
	return &App{
		Ctx:   context.Background(),
		Users: service.NewUserService(userRepo, authCfg),
		Tickets: service.NewTicketService(service.TicketDependencies{
			TicketRepo: ticketRepo,
			UserRepo:   userRepo,
		}),
		Notifications: service.NewNotificationService(notificationRepo, nil, nil),
		Session:       session.New(),
		Metrics:       observability.NewMetrics(),
	}
}

func registerUser(t *testing.T, app *App, username string, role domain.Role) *domain.User {
	t.Helper()
	var user *domain.User
	var err error
	switch role {
	case domain.RoleStaff:
		user, err = app.Users.RegisterStaff(app.Ctx, username, username+"@x.edu", username, "pass1")
	default:
		user, err = app.Users.RegisterStudent(app.Ctx, username, username+"@x.edu", username, "pass1")
	}
	require.NoError(t, err)
	return user
}

func TestLoginPageExit(t *testing.T) {
	app := newTestApp(t)
	page := NewLoginPage(app)

	next := page.Show(&recordingSurface{}, script("0"))
	assert.Nil(t, next)
}

func TestLoginPageInvalidOptionSelfLoops(t *testing.T) {
	app := newTestApp(t)
	page := NewLoginPage(app)

	next := page.Show(&recordingSurface{}, script("99"))
	assert.Same(t, page, next)
	assert.False(t, app.Session.Authenticated())
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "alice", domain.RoleStudent)

	surface := &recordingSurface{}
	page := NewLoginPage(app)
	next := page.Show(surface, script("1", "alice", "wrong"))

	assert.Same(t, page, next)
	assert.False(t, app.Session.Authenticated())
	assert.Contains(t, surface.lastMessage(), "Login failed")
}

func TestLoginRoutesToRoleDashboard(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "alice", domain.RoleStudent)
	registerUser(t, app, "dana", domain.RoleStaff)

	next := NewLoginPage(app).Show(&recordingSurface{}, script("1", "alice", "pass1"))
	assert.IsType(t, &StudentDashboardPage{}, next)
	assert.Equal(t, "alice", app.Session.CurrentUser().Username)

	app.Session.Logout()
	next = NewLoginPage(app).Show(&recordingSurface{}, script("1", "dana", "pass1"))
	assert.IsType(t, &StaffDashboardPage{}, next)
}

func TestDashboardForRole(t *testing.T) {
	app := newTestApp(t)
	assert.IsType(t, &AdminDashboardPage{}, dashboardForRole(app, domain.RoleAdmin))
	assert.IsType(t, &StaffDashboardPage{}, dashboardForRole(app, domain.RoleStaff))
	assert.IsType(t, &StudentDashboardPage{}, dashboardForRole(app, domain.RoleStudent))
}

func TestStudentDashboardRequiresSession(t *testing.T) {
	app := newTestApp(t)
	next := NewStudentDashboardPage(app).Show(&recordingSurface{}, script("1"))
	assert.IsType(t, &LoginPage{}, next)
}

func TestStudentDashboardInvalidOptionSelfLoops(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", domain.RoleStudent)
	app.Session.SetCurrentUser(user)

	page := NewStudentDashboardPage(app)
	next := page.Show(&recordingSurface{}, script("42"))
	assert.Same(t, page, next)

	tickets, err := app.Tickets.ListByCreator(app.Ctx, user.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestStudentDashboardLogout(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", domain.RoleStudent)
	app.Session.SetCurrentUser(user)

	next := NewStudentDashboardPage(app).Show(&recordingSurface{}, script("0"))
	assert.IsType(t, &LoginPage{}, next)
	assert.False(t, app.Session.Authenticated())
}

func TestRegisterPagePasswordMismatchSelfLoops(t *testing.T) {
	app := newTestApp(t)

	page := NewRegisterPage(app)
	next := page.Show(&recordingSurface{}, script("alice", "alice@x.edu", "Alice", "pass1", "pass2"))
	assert.Same(t, page, next)

	available, err := app.Users.IsUsernameAvailable(app.Ctx, "alice")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestRegisterPageCancelReturnsToLogin(t *testing.T) {
	app := newTestApp(t)

	next := NewRegisterPage(app).Show(&recordingSurface{}, script("0"))
	assert.IsType(t, &LoginPage{}, next)
}

func TestCreateTicketPriorityRetry(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", domain.RoleStudent)
	app.Session.SetCurrentUser(user)

	surface := &recordingSurface{}
	next := NewCreateTicketPage(app).Show(surface, script(
		"WiFi down", "No signal in dorm B", "Technical", "URGENT", "HIGH"))
	assert.IsType(t, &StudentDashboardPage{}, next)

	tickets, err := app.Tickets.ListByCreator(app.Ctx, user.ID, nil)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, domain.TicketPriorityHigh, tickets[0].Priority)
	assert.Contains(t, surface.messages, "Invalid Priority. Please type LOW, MEDIUM, or HIGH.")
}

func TestViewTicketsSelectOpensDetails(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", domain.RoleStudent)
	app.Session.SetCurrentUser(user)

	_, err := app.Tickets.CreateTicket(app.Ctx, user, service.CreateTicketInput{
		Title:    "WiFi down",
		Priority: domain.TicketPriorityHigh,
	})
	require.NoError(t, err)

	page := NewViewTicketsPage(app, FilterOpen, false)
	next := page.Show(&recordingSurface{}, script("1"))
	assert.IsType(t, &TicketDetailsPage{}, next)
}

func TestViewTicketsInvalidSelectionSelfLoops(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", domain.RoleStudent)
	app.Session.SetCurrentUser(user)

	page := NewViewTicketsPage(app, FilterAll, false)
	next := page.Show(&recordingSurface{}, script("7"))
	assert.Same(t, page, next)
}

// Full journey: register, login, create a ticket, find it in the open list.
func TestStudentJourney(t *testing.T) {
	app := newTestApp(t)
	surface := &recordingSurface{}

	next := NewRegisterPage(app).Show(surface, script(
		"alice", "alice@x.edu", "Alice", "pass1", "pass1"))
	require.IsType(t, &LoginPage{}, next)

	next = next.Show(surface, script("1", "alice", "pass1"))
	require.IsType(t, &StudentDashboardPage{}, next)

	next = NewCreateTicketPage(app).Show(surface, script(
		"WiFi down", "No connectivity since last night", "Technical", "HIGH"))
	require.IsType(t, &StudentDashboardPage{}, next)

	listSurface := &recordingSurface{}
	NewViewTicketsPage(app, FilterOpen, false).Show(listSurface, script("0"))
	require.Len(t, listSurface.bodies, 1)
	assert.Contains(t, listSurface.bodies[0], "WiFi down")
	assert.Contains(t, listSurface.bodies[0], "OPEN")
	assert.Contains(t, listSurface.bodies[0], "HIGH")
}
