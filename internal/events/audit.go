package events

import (
	"context"

	"go.uber.org/zap"
)

// RegisterAuditLog subscribes a logging handler to every lifecycle event so a
// session leaves an audit trail on stderr without the pages knowing about it.
func RegisterAuditLog(dispatcher Dispatcher, logger *zap.Logger) {
	if dispatcher == nil || logger == nil {
		return
	}
	handler := func(_ context.Context, event Event) error {
		logger.Info("audit",
			zap.String("event", string(event.Type)),
			zap.String("ticket_id", event.TicketID),
			zap.String("actor_id", event.ActorID),
			zap.Any("payload", event.Payload))
		return nil
	}
	for _, eventType := range []EventType{
		EventTicketCreated,
		EventTicketStatusChanged,
		EventTicketPriorityChanged,
		EventTicketAssigned,
		EventTicketDeleted,
		EventNotificationSent,
	} {
		dispatcher.Subscribe(eventType, handler)
	}
}
