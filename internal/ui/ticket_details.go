package ui

import (
	"fmt"
	"strings"

	"github.com/spec-kit/campus-helpdesk/internal/auth"
	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/pkg/util"
)

// TicketDetailsPage shows one ticket and the actions the current role may
// perform on it. The menu is built from the authorization policy: actions a
// role is denied are never rendered, and the services re-check anyway. The
// page carries an explicit back-reference instead of a history stack.
type TicketDetailsPage struct {
	app      *App
	ticketID string
	previous Page
}

// NewTicketDetailsPage constructs the page. previous is shown on back.
func NewTicketDetailsPage(app *App, ticketID string, previous Page) *TicketDetailsPage {
	return &TicketDetailsPage{app: app, ticketID: ticketID, previous: previous}
}

func (p *TicketDetailsPage) Name() string { return "ticket_details" }

type ticketAction struct {
	label  string
	action auth.Action
	run    func(p *TicketDetailsPage, surface Surface, input Input, ticket *domain.Ticket) Page
}

// ticketActions is the ordered superset of detail-page actions; each entry
// is rendered only for roles the policy allows.
var ticketActions = []ticketAction{
	{"Change Status", auth.ActionChangeStatus, (*TicketDetailsPage).changeStatus},
	{"Change Priority", auth.ActionChangePriority, (*TicketDetailsPage).changePriority},
	{"Assign to Staff", auth.ActionAssignTicket, (*TicketDetailsPage).assignToStaff},
	{"Resolve Ticket", auth.ActionResolveTicket, (*TicketDetailsPage).resolveTicket},
	{"Close Ticket", auth.ActionCloseTicket, (*TicketDetailsPage).closeTicket},
	{"Delete Ticket", auth.ActionDeleteTicket, (*TicketDetailsPage).deleteTicket},
}

func (p *TicketDetailsPage) Show(surface Surface, input Input) Page {
	user := p.app.Session.CurrentUser()
	if user == nil {
		return NewLoginPage(p.app)
	}

	ticket, err := p.app.Tickets.FindByID(p.app.Ctx, p.ticketID)
	if err != nil {
		surface.Message("[X] Ticket not found.")
		input.Pause()
		return p.previous
	}

	var creator, assignee *domain.User
	creator, _ = p.app.Users.FindByID(p.app.Ctx, ticket.CreatedBy)
	if !ticket.Unassigned() {
		assignee, _ = p.app.Users.FindByID(p.app.Ctx, *ticket.AssignedTo)
	}

	offered := make([]ticketAction, 0, len(ticketActions))
	for _, entry := range ticketActions {
		if auth.Can(user.Role, entry.action) {
			offered = append(offered, entry)
		}
	}

	var menu strings.Builder
	menu.WriteString("Actions:\n")
	for i, entry := range offered {
		fmt.Fprintf(&menu, "%d. %s\n", i+1, entry.label)
	}
	menu.WriteString("0. Back")

	surface.Refresh("Ticket Details", formatTicketDetails(ticket, creator, assignee)+"\n\n"+menu.String(), "Select Action")
	choice := input.ReadInt("")

	if choice == 0 {
		return p.previous
	}
	if choice > 0 && choice <= len(offered) {
		return offered[choice-1].run(p, surface, input, ticket)
	}

	surface.Message("[!] Invalid option.")
	input.Pause()
	return p
}

func (p *TicketDetailsPage) changeStatus(surface Surface, input Input, ticket *domain.Ticket) Page {
	surface.Message("Available statuses: OPEN, RESOLVED, CLOSED, ON_HOLD")
	raw := input.ReadLine("Enter new status:")

	status, err := domain.ParseTicketStatus(raw)
	if err != nil {
		surface.Message("[X] Invalid status.")
		input.Pause()
		return p
	}

	if err := p.app.Tickets.ChangeStatus(p.app.Ctx, p.app.Session.CurrentUser(), ticket.ID, status); err != nil {
		p.app.Metrics.RecordAction("change_status", false)
		surface.Message("[X] Failed to update status.")
	} else {
		p.app.Metrics.RecordAction("change_status", true)
		surface.Message("[OK] Status updated successfully.")
	}
	input.Pause()
	return p
}

func (p *TicketDetailsPage) changePriority(surface Surface, input Input, ticket *domain.Ticket) Page {
	surface.Message("Available priorities: LOW, MEDIUM, HIGH")
	raw := input.ReadLine("Enter new priority:")

	priority, err := domain.ParseTicketPriority(raw)
	if err != nil {
		surface.Message("[X] Invalid priority.")
		input.Pause()
		return p
	}

	if err := p.app.Tickets.ChangePriority(p.app.Ctx, p.app.Session.CurrentUser(), ticket.ID, priority); err != nil {
		p.app.Metrics.RecordAction("change_priority", false)
		surface.Message("[X] Failed to update priority.")
	} else {
		p.app.Metrics.RecordAction("change_priority", true)
		surface.Message("[OK] Priority updated successfully.")
	}
	input.Pause()
	return p
}

func (p *TicketDetailsPage) assignToStaff(surface Surface, input Input, ticket *domain.Ticket) Page {
	staff, err := p.app.Users.ListStaff(p.app.Ctx)
	if err != nil || len(staff) == 0 {
		surface.Message("No staff members available.")
		input.Pause()
		return p
	}

	surface.Message("Available Staff:")
	surface.Message(formatUserList(staff))

	choice := input.ReadInt("Select staff number (0 to cancel):")
	if choice == 0 {
		return p
	}
	if choice < 1 || choice > len(staff) {
		surface.Message("[X] Invalid selection.")
		input.Pause()
		return p
	}

	selected := staff[choice-1]
	if err := p.app.Tickets.AssignToStaff(p.app.Ctx, p.app.Session.CurrentUser(), ticket.ID, selected.ID); err != nil {
		p.app.Metrics.RecordAction("assign_ticket", false)
		surface.Message("[X] Failed to assign ticket.")
	} else {
		p.app.Metrics.RecordAction("assign_ticket", true)
		surface.Message(fmt.Sprintf("[OK] Ticket assigned to %s.", selected.Name))
	}
	input.Pause()
	return p
}

func (p *TicketDetailsPage) resolveTicket(surface Surface, input Input, ticket *domain.Ticket) Page {
	if err := p.app.Tickets.Resolve(p.app.Ctx, p.app.Session.CurrentUser(), ticket.ID); err != nil {
		surface.Message("[X] Failed to resolve ticket.")
	} else {
		surface.Message("[OK] Ticket resolved successfully.")
	}
	input.Pause()
	return p
}

func (p *TicketDetailsPage) closeTicket(surface Surface, input Input, ticket *domain.Ticket) Page {
	if err := p.app.Tickets.Close(p.app.Ctx, p.app.Session.CurrentUser(), ticket.ID); err != nil {
		surface.Message("[X] Failed to close ticket.")
	} else {
		surface.Message("[OK] Ticket closed successfully.")
	}
	input.Pause()
	return p
}

func (p *TicketDetailsPage) deleteTicket(surface Surface, input Input, ticket *domain.Ticket) Page {
	confirm := input.ReadLine("Are you sure you want to delete this ticket? (yes/no):")
	if !strings.EqualFold(confirm, "yes") {
		surface.Message("Deletion cancelled.")
		input.Pause()
		return p
	}

	if err := p.app.Tickets.DeleteTicket(p.app.Ctx, p.app.Session.CurrentUser(), ticket.ID); err != nil {
		p.app.Metrics.RecordAction("delete_ticket", false)
		if util.IsNotFound(err) {
			surface.Message("[X] Ticket not found.")
			input.Pause()
			return p.previous
		}
		surface.Message("[X] Failed to delete ticket.")
		input.Pause()
		return p
	}

	p.app.Metrics.RecordAction("delete_ticket", true)
	surface.Message("[OK] Ticket deleted successfully.")
	input.Pause()
	return p.previous
}
