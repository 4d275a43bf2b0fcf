package ui

import (
	"context"

	"github.com/spec-kit/campus-helpdesk/internal/observability"
	"github.com/spec-kit/campus-helpdesk/internal/service"
	"github.com/spec-kit/campus-helpdesk/internal/session"
)

// Page is a self-contained screen: it renders state, reads one interactive
// choice and returns the next Page. A nil return exits the application.
// Invalid input returns the receiver itself, re-rendering until a valid
// choice or an explicit cancel ("0") arrives.
type Page interface {
	Name() string
	Show(surface Surface, input Input) Page
}

// App bundles the collaborators every page needs. Pages receive it
// explicitly instead of reaching for a locator, so each page can be
// constructed in isolation with scripted collaborators.
type App struct {
	Ctx           context.Context
	Users         *service.UserService
	Tickets       *service.TicketService
	Notifications *service.NotificationService
	Session       *session.Session
	Metrics       *observability.Metrics
}

// Run drives the page graph: a pure trampoline that holds no state beyond
// the current page.
func Run(start Page, surface Surface, input Input, metrics *observability.Metrics) {
	current := start
	for current != nil {
		metrics.RecordPageView(current.Name())
		current = current.Show(surface, input)
	}
}
