package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/internal/events"
	"github.com/spec-kit/campus-helpdesk/internal/persistence"
	"github.com/spec-kit/campus-helpdesk/internal/repository"
	"github.com/spec-kit/campus-helpdesk/pkg/util"
)

// NotificationService handles the notification inbox lifecycle:
// created -> read toggle -> deleted. The unread count is cached in Redis when
// available; cache is nil-safe and invalidated on every write.
type NotificationService struct {
	notifications repository.NotificationRepository
	cache         *persistence.Redis
	dispatcher    events.Dispatcher
}

// NewNotificationService creates the service. cache may be nil.
func NewNotificationService(notifications repository.NotificationRepository, cache *persistence.Redis, dispatcher events.Dispatcher) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		cache:         cache,
		dispatcher:    dispatcher,
	}
}

// Send delivers one notification. createdBy is nil for system-generated
// notifications.
func (s *NotificationService) Send(ctx context.Context, receiverID, title, message string, createdBy *string) (*domain.Notification, error) {
	notification := &domain.Notification{
		ReceiverID: receiverID,
		Title:      strings.TrimSpace(title),
		Message:    strings.TrimSpace(message),
		IsRead:     false,
		CreatedBy:  createdBy,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("receiver", map[string]any{"id": receiverID})
		}
		return nil, util.NewInternalError(err)
	}
	s.cache.InvalidateUnreadCount(ctx, receiverID)
	return notification, nil
}

// SendBulk fans out one notification per receiver. Each write is independent;
// the returned count is the number of receivers for whom creation succeeded,
// not all-or-nothing.
func (s *NotificationService) SendBulk(ctx context.Context, receiverIDs []string, title, message string, createdBy *string) int {
	delivered := 0
	for _, receiverID := range receiverIDs {
		if _, err := s.Send(ctx, receiverID, title, message, createdBy); err == nil {
			delivered++
		}
	}
	s.publishSent(ctx, createdBy, len(receiverIDs), delivered)
	return delivered
}

// List returns a user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.notifications.ListByReceiver(ctx, userID)
}

// FindByID fetches one notification.
func (s *NotificationService) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	notification, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("notification", map[string]any{"id": id})
		}
		return nil, util.NewInternalError(err)
	}
	return notification, nil
}

// UnreadCount returns the number of unread notifications for a user.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) int {
	if count, ok := s.cache.GetUnreadCount(ctx, userID); ok {
		return count
	}
	count, err := s.notifications.CountUnreadByReceiver(ctx, userID)
	if err != nil {
		return 0
	}
	s.cache.SetUnreadCount(ctx, userID, count)
	return count
}

// MarkRead marks one notification read. Idempotent.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	notification, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		return util.NewInternalError(err)
	}
	s.cache.InvalidateUnreadCount(ctx, notification.ReceiverID)
	return nil
}

// MarkAllRead marks every unread notification for one receiver and returns
// the number affected. Other users' rows are untouched.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	count, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, util.NewInternalError(err)
	}
	s.cache.InvalidateUnreadCount(ctx, userID)
	return count, nil
}

// Delete removes one notification.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	notification, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.notifications.Delete(ctx, id); err != nil {
		return util.NewInternalError(err)
	}
	s.cache.InvalidateUnreadCount(ctx, notification.ReceiverID)
	return nil
}

// DeleteAll removes every notification for one receiver and returns the
// number deleted.
func (s *NotificationService) DeleteAll(ctx context.Context, userID string) (int, error) {
	count, err := s.notifications.DeleteAllByReceiver(ctx, userID)
	if err != nil {
		return 0, util.NewInternalError(err)
	}
	s.cache.InvalidateUnreadCount(ctx, userID)
	return count, nil
}

func (s *NotificationService) publishSent(ctx context.Context, createdBy *string, receivers, delivered int) {
	if s.dispatcher == nil {
		return
	}
	actorID := ""
	if createdBy != nil {
		actorID = *createdBy
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventNotificationSent,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload: events.NotificationSentPayload{
			Receivers: receivers,
			Delivered: delivered,
		},
	})
}
