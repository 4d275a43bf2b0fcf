package ui

import (
	"fmt"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
)

// TicketFilter selects which slice of tickets a list page shows.
type TicketFilter int

const (
	FilterAll TicketFilter = iota
	FilterOpen
	FilterResolved
	FilterClosed
	FilterOnHold
	FilterUnassigned
)

func (f TicketFilter) title() string {
	switch f {
	case FilterOpen:
		return "Open Tickets"
	case FilterResolved:
		return "Resolved Tickets"
	case FilterClosed:
		return "Closed Tickets"
	case FilterOnHold:
		return "Tickets On Hold"
	case FilterUnassigned:
		return "Unassigned Tickets"
	default:
		return "All Tickets"
	}
}

func (f TicketFilter) status() *domain.TicketStatus {
	var status domain.TicketStatus
	switch f {
	case FilterOpen:
		status = domain.TicketStatusOpen
	case FilterResolved:
		status = domain.TicketStatusResolved
	case FilterClosed:
		status = domain.TicketStatusClosed
	case FilterOnHold:
		status = domain.TicketStatusOnHold
	default:
		return nil
	}
	return &status
}

// ViewTicketsPage lists tickets for the current role: admins see system-wide
// slices, staff see their assignments, students see their own tickets.
// Selecting a ticket opens its detail page with this page as the explicit
// back-reference.
type ViewTicketsPage struct {
	app          *App
	filter       TicketFilter
	assignedView bool
}

// NewViewTicketsPage constructs the page. assignedView scopes the list to
// tickets assigned to the current user, used by the staff dashboard.
func NewViewTicketsPage(app *App, filter TicketFilter, assignedView bool) *ViewTicketsPage {
	return &ViewTicketsPage{app: app, filter: filter, assignedView: assignedView}
}

func (p *ViewTicketsPage) Name() string { return "view_tickets" }

func (p *ViewTicketsPage) Show(surface Surface, input Input) Page {
	user := p.app.Session.CurrentUser()
	if user == nil {
		return NewLoginPage(p.app)
	}

	tickets, err := p.loadTickets(user)
	if err != nil {
		surface.Message("[X] Could not load tickets.")
		input.Pause()
		return dashboardForRole(p.app, user.Role)
	}

	body := fmt.Sprintf(`Total: %d ticket(s)

%s

Enter ticket number to view details,
or 0 to go back.`, len(tickets), formatTicketList(tickets))

	surface.Refresh(p.filter.title(), body, "Select Ticket")
	choice := input.ReadInt("")

	if choice == 0 {
		return dashboardForRole(p.app, user.Role)
	}
	if choice > 0 && choice <= len(tickets) {
		return NewTicketDetailsPage(p.app, tickets[choice-1].ID, p)
	}

	surface.Message("[!] Invalid selection.")
	input.Pause()
	return p
}

func (p *ViewTicketsPage) loadTickets(user *domain.User) ([]domain.Ticket, error) {
	ctx := p.app.Ctx
	switch user.Role {
	case domain.RoleAdmin:
		if p.filter == FilterUnassigned {
			return p.app.Tickets.ListUnassigned(ctx)
		}
		if status := p.filter.status(); status != nil {
			return p.app.Tickets.ListByStatus(ctx, *status)
		}
		return p.app.Tickets.ListAll(ctx)
	case domain.RoleStaff:
		if p.assignedView {
			return p.app.Tickets.ListByAssignee(ctx, user.ID, p.filter.status())
		}
		return p.app.Tickets.ListByAssignee(ctx, user.ID, nil)
	default:
		return p.app.Tickets.ListByCreator(ctx, user.ID, p.filter.status())
	}
}
