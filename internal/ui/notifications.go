package ui

import (
	"fmt"
	"strings"
)

// NotificationsPage shows the current user's inbox. Available to all roles;
// mark-all and delete-all only touch the current user's rows.
type NotificationsPage struct {
	app *App
}

// NewNotificationsPage constructs the page.
func NewNotificationsPage(app *App) *NotificationsPage {
	return &NotificationsPage{app: app}
}

func (p *NotificationsPage) Name() string { return "notifications" }

func (p *NotificationsPage) Show(surface Surface, input Input) Page {
	user := p.app.Session.CurrentUser()
	if user == nil {
		return NewLoginPage(p.app)
	}

	notifications, err := p.app.Notifications.List(p.app.Ctx, user.ID)
	if err != nil {
		surface.Message("[X] Could not load notifications.")
		input.Pause()
		return dashboardForRole(p.app, user.Role)
	}
	unread := p.app.Notifications.UnreadCount(p.app.Ctx, user.ID)

	body := fmt.Sprintf(`Unread: %d | Total: %d

%s

Actions:
1. Mark all as read
2. View notification details
3. Delete all notifications
0. Back`, unread, len(notifications), formatNotificationList(notifications))

	surface.Refresh("Notifications", body, "Select Option")
	choice := input.ReadInt("")

	switch choice {
	case 1:
		marked, err := p.app.Notifications.MarkAllRead(p.app.Ctx, user.ID)
		if err != nil {
			surface.Message("[X] Failed to mark notifications as read.")
		} else {
			surface.Message(fmt.Sprintf("[OK] %d notification(s) marked as read.", marked))
		}
		input.Pause()
		return p
	case 2:
		if len(notifications) == 0 {
			surface.Message("No notifications to view.")
			input.Pause()
			return p
		}
		selected := input.ReadInt("Enter notification number to view:")
		if selected > 0 && selected <= len(notifications) {
			notification := notifications[selected-1]
			_ = p.app.Notifications.MarkRead(p.app.Ctx, notification.ID)
			surface.Message("")
			surface.Message(notification.Title)
			surface.Message(strings.Repeat("-", 40))
			surface.Message(notification.Message)
		}
		input.Pause()
		return p
	case 3:
		confirm := input.ReadLine("Delete all notifications? (yes/no):")
		if strings.EqualFold(confirm, "yes") {
			deleted, err := p.app.Notifications.DeleteAll(p.app.Ctx, user.ID)
			if err != nil {
				surface.Message("[X] Failed to delete notifications.")
			} else {
				surface.Message(fmt.Sprintf("[OK] %d notification(s) deleted.", deleted))
			}
		}
		input.Pause()
		return p
	case 0:
		return dashboardForRole(p.app, user.Role)
	default:
		surface.Message("[!] Invalid option.")
		input.Pause()
		return p
	}
}
