package ui

import (
	"fmt"
	"strings"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
)

// SendNotificationPage lets an admin compose a notification and deliver it to
// one user, all students, all staff, or everyone.
type SendNotificationPage struct {
	app *App
}

func NewSendNotificationPage(app *App) *SendNotificationPage {
	return &SendNotificationPage{app: app}
}

func (p *SendNotificationPage) Name() string { return "send_notification" }

func (p *SendNotificationPage) Show(surface Surface, input Input) Page {
	user := p.app.Session.CurrentUser()
	if user == nil {
		return NewLoginPage(p.app)
	}

	body := strings.Join([]string{
		"1. Send to a specific user",
		"2. Send to all students",
		"3. Send to all staff",
		"4. Send to all users",
		"",
		"0. Back",
	}, "\n")
	surface.Refresh("Send Notification", body, "")

	choice := input.ReadInt("Choose an option:")
	switch choice {
	case 1:
		return p.sendToUser(surface, input)
	case 2:
		return p.sendToGroup(surface, input, "students")
	case 3:
		return p.sendToGroup(surface, input, "staff")
	case 4:
		return p.sendToGroup(surface, input, "everyone")
	case 0:
		return NewAdminDashboardPage(p.app)
	default:
		surface.Message("[X] Invalid option, try again.")
		input.Pause()
		return p
	}
}

func (p *SendNotificationPage) sendToUser(surface Surface, input Input) Page {
	users, err := p.app.Users.ListAll(p.app.Ctx)
	if err != nil {
		surface.Message("[X] Failed to load users.")
		input.Pause()
		return p
	}
	if len(users) == 0 {
		surface.Message("No users found.")
		input.Pause()
		return p
	}

	surface.Refresh("Send Notification", formatUserList(users), "")
	choice := input.ReadInt("Select a user (0 to cancel):")
	if choice == 0 {
		return p
	}
	if choice < 1 || choice > len(users) {
		surface.Message("[X] Invalid option, try again.")
		input.Pause()
		return p
	}
	receiver := users[choice-1]

	title, message, ok := p.compose(input)
	if !ok {
		return p
	}

	sender := p.app.Session.CurrentUser()
	if _, err := p.app.Notifications.Send(p.app.Ctx, receiver.ID, title, message, &sender.ID); err != nil {
		p.app.Metrics.RecordAction("send_notification", false)
		surface.Message("[X] Failed to send notification.")
		input.Pause()
		return p
	}

	p.app.Metrics.RecordAction("send_notification", true)
	surface.Message(fmt.Sprintf("[OK] Notification sent to %s.", receiver.Name))
	input.Pause()
	return NewAdminDashboardPage(p.app)
}

func (p *SendNotificationPage) sendToGroup(surface Surface, input Input, group string) Page {
	var receivers []domain.User
	var err error
	switch group {
	case "students":
		receivers, err = p.app.Users.ListStudents(p.app.Ctx)
	case "staff":
		receivers, err = p.app.Users.ListStaff(p.app.Ctx)
	default:
		receivers, err = p.app.Users.ListAll(p.app.Ctx)
	}
	if err != nil {
		surface.Message("[X] Failed to load recipients.")
		input.Pause()
		return p
	}
	if len(receivers) == 0 {
		surface.Message("No recipients found.")
		input.Pause()
		return p
	}

	title, message, ok := p.compose(input)
	if !ok {
		return p
	}

	ids := make([]string, len(receivers))
	for i, receiver := range receivers {
		ids[i] = receiver.ID
	}

	sender := p.app.Session.CurrentUser()
	delivered := p.app.Notifications.SendBulk(p.app.Ctx, ids, title, message, &sender.ID)
	p.app.Metrics.RecordAction("send_notification", delivered > 0)
	surface.Message(fmt.Sprintf("[OK] Notification delivered to %d of %d recipients.", delivered, len(ids)))
	input.Pause()
	return NewAdminDashboardPage(p.app)
}

func (p *SendNotificationPage) compose(input Input) (title, message string, ok bool) {
	title = input.ReadLine("Title (0 to cancel):")
	if title == "0" {
		return "", "", false
	}
	message = input.ReadLine("Message (0 to cancel):")
	if message == "0" {
		return "", "", false
	}
	return title, message, true
}
