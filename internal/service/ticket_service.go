package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/campus-helpdesk/internal/auth"
	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/internal/events"
	"github.com/spec-kit/campus-helpdesk/internal/repository"
	"github.com/spec-kit/campus-helpdesk/pkg/util"
)

// TicketService coordinates the ticket lifecycle. The authorization policy is
// enforced structurally by the pages (denied actions are never offered) and
// re-checked defensively here before every mutation.
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// CreateTicketInput describes ticket creation payload.
type CreateTicketInput struct {
	Title       string
	Description string
	Priority    domain.TicketPriority
	Category    string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket creates a ticket for the acting user. Priority defaults to
// MEDIUM and status is always OPEN.
func (s *TicketService) CreateTicket(ctx context.Context, actor *domain.User, input CreateTicketInput) (*domain.Ticket, error) {
	if !auth.Can(actor.Role, auth.ActionCreateTicket) {
		return nil, util.NewDenied("role cannot create tickets")
	}

	ticket := &domain.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Priority:    input.Priority,
		Status:      domain.TicketStatusOpen,
		Category:    strings.TrimSpace(input.Category),
		CreatedBy:   actor.ID,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}
	if ticket.Title == "" {
		return nil, util.NewValidationError("title is required", nil)
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, util.NewInternalError(err)
	}
	s.publish(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Priority: ticket.Priority,
			Category: ticket.Category,
		},
	})
	return ticket, nil
}

// FindByID fetches one ticket.
func (s *TicketService) FindByID(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, util.NewInternalError(err)
	}
	return ticket, nil
}

// ListAll returns every ticket.
func (s *TicketService) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.ListAll(ctx)
}

// ListByStatus returns tickets in one status.
func (s *TicketService) ListByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	return s.tickets.ListWithFilter(ctx, repository.TicketFilter{Status: &status})
}

// ListByCreator returns a user's own tickets, optionally filtered by status.
func (s *TicketService) ListByCreator(ctx context.Context, userID string, status *domain.TicketStatus) ([]domain.Ticket, error) {
	return s.tickets.ListWithFilter(ctx, repository.TicketFilter{CreatedBy: &userID, Status: status})
}

// ListByAssignee returns a staff member's assigned tickets, optionally
// filtered by status.
func (s *TicketService) ListByAssignee(ctx context.Context, staffID string, status *domain.TicketStatus) ([]domain.Ticket, error) {
	return s.tickets.ListWithFilter(ctx, repository.TicketFilter{AssignedTo: &staffID, Status: status})
}

// ListUnassigned returns tickets with no assignee. Assignment is one-way, so
// a ticket leaves this set permanently once assigned.
func (s *TicketService) ListUnassigned(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.ListWithFilter(ctx, repository.TicketFilter{Unassigned: true})
}

// ChangeStatus moves a ticket to any target status. The status graph is
// free: CLOSED and RESOLVED tickets may be reopened.
func (s *TicketService) ChangeStatus(ctx context.Context, actor *domain.User, ticketID string, newStatus domain.TicketStatus) error {
	if !auth.Can(actor.Role, auth.ActionChangeStatus) {
		return util.NewDenied("role cannot change ticket status")
	}

	ticket, err := s.FindByID(ctx, ticketID)
	if err != nil {
		return err
	}

	oldStatus := ticket.Status
	if err := s.tickets.UpdateStatus(ctx, ticketID, newStatus); err != nil {
		return util.NewInternalError(err)
	}
	s.publish(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticketID,
		ActorID:  actor.ID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return nil
}

// Resolve marks a ticket RESOLVED.
func (s *TicketService) Resolve(ctx context.Context, actor *domain.User, ticketID string) error {
	if !auth.Can(actor.Role, auth.ActionResolveTicket) {
		return util.NewDenied("role cannot resolve tickets")
	}
	return s.ChangeStatus(ctx, actor, ticketID, domain.TicketStatusResolved)
}

// Close marks a ticket CLOSED.
func (s *TicketService) Close(ctx context.Context, actor *domain.User, ticketID string) error {
	if !auth.Can(actor.Role, auth.ActionCloseTicket) {
		return util.NewDenied("role cannot close tickets")
	}
	return s.ChangeStatus(ctx, actor, ticketID, domain.TicketStatusClosed)
}

// Reopen moves a ticket back to OPEN.
func (s *TicketService) Reopen(ctx context.Context, actor *domain.User, ticketID string) error {
	return s.ChangeStatus(ctx, actor, ticketID, domain.TicketStatusOpen)
}

// ChangePriority changes ticket priority. Admin only.
func (s *TicketService) ChangePriority(ctx context.Context, actor *domain.User, ticketID string, newPriority domain.TicketPriority) error {
	if !auth.Can(actor.Role, auth.ActionChangePriority) {
		return util.NewDenied("role cannot change ticket priority")
	}

	ticket, err := s.FindByID(ctx, ticketID)
	if err != nil {
		return err
	}

	oldPriority := ticket.Priority
	if err := s.tickets.UpdatePriority(ctx, ticketID, newPriority); err != nil {
		return util.NewInternalError(err)
	}
	s.publish(ctx, events.Event{
		Type:     events.EventTicketPriorityChanged,
		TicketID: ticketID,
		ActorID:  actor.ID,
		Payload: events.TicketPriorityChangedPayload{
			OldPriority: oldPriority,
			NewPriority: newPriority,
		},
	})
	return nil
}

// AssignToStaff assigns a ticket to a staff member without touching its
// status. Admin only. There is no unassign operation.
func (s *TicketService) AssignToStaff(ctx context.Context, actor *domain.User, ticketID, staffID string) error {
	if !auth.Can(actor.Role, auth.ActionAssignTicket) {
		return util.NewDenied("role cannot assign tickets")
	}

	staff, err := s.users.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("staff member", map[string]any{"id": staffID})
		}
		return util.NewInternalError(err)
	}
	if staff.Role != domain.RoleStaff {
		return util.NewValidationError("assignee must be a staff member", map[string]any{"role": staff.Role})
	}

	if _, err := s.FindByID(ctx, ticketID); err != nil {
		return err
	}
	if err := s.tickets.Assign(ctx, ticketID, staffID); err != nil {
		return util.NewInternalError(err)
	}
	s.publish(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticketID,
		ActorID:  actor.ID,
		Payload:  events.TicketAssignedPayload{StaffID: staffID},
	})
	return nil
}

// DeleteTicket removes a ticket entirely. Admin only.
func (s *TicketService) DeleteTicket(ctx context.Context, actor *domain.User, ticketID string) error {
	if !auth.Can(actor.Role, auth.ActionDeleteTicket) {
		return util.NewDenied("role cannot delete tickets")
	}
	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return util.NewInternalError(err)
	}
	s.publish(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: ticketID,
		ActorID:  actor.ID,
	})
	return nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
