package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
)

// Formatting helpers shared by the list and detail pages.

var (
	statusStyles = map[domain.TicketStatus]lipgloss.Style{
		domain.TicketStatusOpen:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		domain.TicketStatusResolved: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		domain.TicketStatusClosed:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		domain.TicketStatusOnHold:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
	priorityStyles = map[domain.TicketPriority]lipgloss.Style{
		domain.TicketPriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		domain.TicketPriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		domain.TicketPriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
	unreadStyle = lipgloss.NewStyle().Bold(true)
)

func renderStatus(status domain.TicketStatus) string {
	return statusStyles[status].Render(string(status))
}

func renderPriority(priority domain.TicketPriority) string {
	return priorityStyles[priority].Render(string(priority))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatTicketList(tickets []domain.Ticket) string {
	if len(tickets) == 0 {
		return "  (no tickets)"
	}
	var b strings.Builder
	for i, ticket := range tickets {
		fmt.Fprintf(&b, "  [%d] [%s] %s - %s (%s)\n",
			i+1, renderStatus(ticket.Status), ticket.Title, renderPriority(ticket.Priority), shortID(ticket.ID))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTicketDetails(ticket *domain.Ticket, creator, assignee *domain.User) string {
	category := ticket.Category
	if category == "" {
		category = "N/A"
	}
	assignedTo := "Unassigned"
	if assignee != nil {
		assignedTo = assignee.Name
	}
	createdBy := ticket.CreatedBy
	if creator != nil {
		createdBy = creator.Name
	}
	return fmt.Sprintf(
		"Ticket:      %s\nTitle:       %s\nDescription: %s\nStatus:      %s\nPriority:    %s\nCategory:    %s\nCreated by:  %s\nAssigned to: %s\nCreated:     %s\nUpdated:     %s",
		shortID(ticket.ID),
		ticket.Title,
		ticket.Description,
		renderStatus(ticket.Status),
		renderPriority(ticket.Priority),
		category,
		createdBy,
		assignedTo,
		ticket.CreatedAt.Format("2006-01-02 15:04"),
		ticket.UpdatedAt.Format("2006-01-02 15:04"),
	)
}

func formatUserList(users []domain.User) string {
	if len(users) == 0 {
		return "  (no users)"
	}
	var b strings.Builder
	for i, user := range users {
		fmt.Fprintf(&b, "  [%d] %s (%s) - %s\n", i+1, user.Name, user.Username, user.Email)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatUserDetails(user *domain.User) string {
	return fmt.Sprintf(
		"Name:     %s\nUsername: %s\nEmail:    %s\nRole:     %s\nCreated:  %s",
		user.Name,
		user.Username,
		user.Email,
		user.Role,
		user.CreatedAt.Format("2006-01-02 15:04"),
	)
}

func formatNotificationList(notifications []domain.Notification) string {
	if len(notifications) == 0 {
		return "  (no notifications)"
	}
	var b strings.Builder
	for i, notification := range notifications {
		marker := " "
		title := notification.Title
		if !notification.IsRead {
			marker = "*"
			title = unreadStyle.Render(title)
		}
		fmt.Fprintf(&b, "  [%d]%s %s - %s\n",
			i+1, marker, title, notification.CreatedAt.Format("2006-01-02 15:04"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func unreadBadge(count int) string {
	if count <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%d new)", count)
}
