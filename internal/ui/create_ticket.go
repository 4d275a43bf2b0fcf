package ui

import (
	"fmt"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/internal/service"
)

// CreateTicketPage is used by both students and admins. Priority is a
// free-text token validated in a retry loop; '0' cancels at any prompt.
type CreateTicketPage struct {
	app *App
}

// NewCreateTicketPage constructs the page.
func NewCreateTicketPage(app *App) *CreateTicketPage {
	return &CreateTicketPage{app: app}
}

func (p *CreateTicketPage) Name() string { return "create_ticket" }

func (p *CreateTicketPage) Show(surface Surface, input Input) Page {
	user := p.app.Session.CurrentUser()
	if user == nil {
		return NewLoginPage(p.app)
	}

	surface.Refresh("New Ticket", "Enter '0' at any prompt to cancel.", "")

	title := input.ReadLine("Title:")
	if title == "0" {
		return dashboardForRole(p.app, user.Role)
	}

	description := input.ReadLine("Description:")
	if description == "0" {
		return dashboardForRole(p.app, user.Role)
	}

	category := input.ReadLine("Category (e.g., Technical, Academic, Facility):")
	if category == "0" {
		return dashboardForRole(p.app, user.Role)
	}

	var priority domain.TicketPriority
	for {
		raw := input.ReadLine("Priority (LOW, MEDIUM, HIGH):")
		if raw == "0" {
			return dashboardForRole(p.app, user.Role)
		}
		parsed, err := domain.ParseTicketPriority(raw)
		if err != nil {
			surface.Message("Invalid Priority. Please type LOW, MEDIUM, or HIGH.")
			continue
		}
		priority = parsed
		break
	}

	ticket, err := p.app.Tickets.CreateTicket(p.app.Ctx, user, service.CreateTicketInput{
		Title:       title,
		Description: description,
		Priority:    priority,
		Category:    category,
	})
	if err != nil {
		p.app.Metrics.RecordAction("create_ticket", false)
		surface.Message("[X] Failed to create ticket. Please try again.")
	} else {
		p.app.Metrics.RecordAction("create_ticket", true)
		surface.Message("[OK] Ticket created successfully!")
		surface.Message(fmt.Sprintf("     Ticket ID: %s", shortID(ticket.ID)))
	}

	input.Pause()
	return dashboardForRole(p.app, user.Role)
}
