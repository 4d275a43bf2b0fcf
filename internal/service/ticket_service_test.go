package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/internal/events"
	"github.com/spec-kit/campus-helpdesk/internal/repository"
	"github.com/spec-kit/campus-helpdesk/pkg/util"
)

type ticketFixture struct {
	svc     *TicketService
	users   repository.UserRepository
	tickets repository.TicketRepository
	events  []events.Event

	student *domain.User
	staff   *domain.User
	admin   *domain.User
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()
	f := &ticketFixture{
		users:   repository.NewMemoryUserRepository(),
		tickets: repository.NewMemoryTicketRepository(),
	}

	dispatcher := events.NewInMemoryDispatcher()
	for _, eventType := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketStatusChanged,
		events.EventTicketPriorityChanged,
		events.EventTicketAssigned,
		events.EventTicketDeleted,
	} {
		dispatcher.Subscribe(eventType, func(_ context.Context, event events.Event) error {
			f.events = append(f.events, event)
			return nil
		})
	}

	f.svc = NewTicketService(TicketDependencies{
		TicketRepo: f.tickets,
		UserRepo:   f.users,
		Dispatcher: dispatcher,
	})

	f.student = f.addUser(t, "alice", domain.RoleStudent)
	f.staff = f.addUser(t, "dana", domain.RoleStaff)
	f.admin = f.addUser(t, "root", domain.RoleAdmin)
	return f
}

func (f *ticketFixture) addUser(t *testing.T, username string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:     username,
		Email:        username + "@x.edu",
		Name:         username,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *ticketFixture) createTicket(t *testing.T, actor *domain.User, title string, priority domain.TicketPriority) *domain.Ticket {
	t.Helper()
	ticket, err := f.svc.CreateTicket(context.Background(), actor, CreateTicketInput{
		Title:       title,
		Description: "desc",
		Priority:    priority,
		Category:    "Technical",
	})
	require.NoError(t, err)
	return ticket
}

func TestCreateTicketDefaults(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture(t)

	ticket, err := f.svc.CreateTicket(ctx, f.student, CreateTicketInput{Title: "WiFi down"})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityMedium, ticket.Priority)
	assert.Equal(t, f.student.ID, ticket.CreatedBy)
	assert.True(t, ticket.Unassigned())

	require.Len(t, f.events, 1)
	assert.Equal(t, events.EventTicketCreated, f.events[0].Type)
}

func TestCreateTicketRequiresTitle(t *testing.T) {
	f := newTicketFixture(t)

	_, err := f.svc.CreateTicket(context.Background(), f.student, CreateTicketInput{Title: "   "})
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))
}

func TestCreateTicketDeniedForStaff(t *testing.T) {
	f := newTicketFixture(t)

	_, err := f.svc.CreateTicket(context.Background(), f.staff, CreateTicketInput{Title: "nope"})
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "DENIED"))
}

func TestReopenClosedTicket(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture(t)

	ticket := f.createTicket(t, f.student, "AC broken", domain.TicketPriorityLow)

	require.NoError(t, f.svc.Close(ctx, f.admin, ticket.ID))
	closed, err := f.svc.FindByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusClosed, closed.Status)

	require.NoError(t, f.svc.Reopen(ctx, f.admin, ticket.ID))
	reopened, err := f.svc.FindByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, reopened.Status)
	assert.True(t, reopened.UpdatedAt.After(closed.UpdatedAt))
}

func TestStaffCanResolveAndClose(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture(t)

	ticket := f.createTicket(t, f.student, "Grade missing", domain.TicketPriorityMedium)

	require.NoError(t, f.svc.Resolve(ctx, f.staff, ticket.ID))
	resolved, err := f.svc.FindByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, resolved.Status)

	require.NoError(t, f.svc.Close(ctx, f.staff, ticket.ID))
}

func TestStudentCannotChangeStatus(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture(t)

	ticket := f.createTicket(t, f.student, "Parking permit", domain.TicketPriorityLow)

	err := f.svc.ChangeStatus(ctx, f.student, ticket.ID, domain.TicketStatusResolved)
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "DENIED"))

	unchanged, err := f.svc.FindByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, unchanged.Status)
}

func TestChangePriorityAdminOnly(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture(t)

	ticket := f.createTicket(t, f.student, "Slow portal", domain.TicketPriorityLow)

	err := f.svc.ChangePriority(ctx, f.staff, ticket.ID, domain.TicketPriorityHigh)
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "DENIED"))

	require.NoError(t, f.svc.ChangePriority(ctx, f.admin, ticket.ID, domain.TicketPriorityHigh))
	updated, err := f.svc.FindByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketPriorityHigh, updated.Priority)
}

// Assignment is one-way: there is no unassign operation, so a ticket leaves
// the unassigned set permanently.
func TestAssignRemovesFromUnassigned(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture(t)

	ticket := f.createTicket(t, f.student, "WiFi down", domain.TicketPriorityHigh)

	unassigned, err := f.svc.ListUnassigned(ctx)
	require.NoError(t, err)
	require.Len(t, unassigned, 1)

	require.NoError(t, f.svc.AssignToStaff(ctx, f.admin, ticket.ID, f.staff.ID))

	unassigned, err = f.svc.ListUnassigned(ctx)
	require.NoError(t, err)
	assert.Empty(t, unassigned)

	assigned, err := f.svc.ListByAssignee(ctx, f.staff.ID, nil)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, ticket.ID, assigned[0].ID)
}

func TestAssignRejectsNonStaff(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture(t)

	ticket := f.createTicket(t, f.student, "WiFi down", domain.TicketPriorityHigh)

	err := f.svc.AssignToStaff(ctx, f.admin, ticket.ID, f.student.ID)
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))

	err = f.svc.AssignToStaff(ctx, f.admin, ticket.ID, "missing-id")
	require.Error(t, err)
	assert.True(t, util.IsNotFound(err))
}

func TestDeleteTicket(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture(t)

	ticket := f.createTicket(t, f.student, "Duplicate", domain.TicketPriorityLow)

	err := f.svc.DeleteTicket(ctx, f.student, ticket.ID)
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "DENIED"))

	require.NoError(t, f.svc.DeleteTicket(ctx, f.admin, ticket.ID))

	_, err = f.svc.FindByID(ctx, ticket.ID)
	assert.True(t, util.IsNotFound(err))

	err = f.svc.DeleteTicket(ctx, f.admin, ticket.ID)
	assert.True(t, util.IsNotFound(err))
}

func TestListByCreatorWithStatus(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture(t)

	first := f.createTicket(t, f.student, "One", domain.TicketPriorityLow)
	f.createTicket(t, f.student, "Two", domain.TicketPriorityLow)
	require.NoError(t, f.svc.Resolve(ctx, f.staff, first.ID))

	open := domain.TicketStatusOpen
	tickets, err := f.svc.ListByCreator(ctx, f.student.ID, &open)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Two", tickets[0].Title)
}
