package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/internal/repository"
	"github.com/spec-kit/campus-helpdesk/pkg/util"
)

type notificationFixture struct {
	svc   *NotificationService
	users repository.UserRepository

	alice *domain.User
	bob   *domain.User
	admin *domain.User
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	t.Helper()
	f := &notificationFixture{users: repository.NewMemoryUserRepository()}

	notifications := repository.NewMemoryNotificationRepository(func(ctx context.Context, id string) (bool, error) {
		if _, err := f.users.GetByID(ctx, id); err != nil {
			return false, nil
		}
		return true, nil
	})
	f.svc = NewNotificationService(notifications, nil, nil)

	for _, fixture := range []struct {
		target **domain.User
		name   string
		role   domain.Role
	}{
		{&f.alice, "alice", domain.RoleStudent},
		{&f.bob, "bob", domain.RoleStudent},
		{&f.admin, "root", domain.RoleAdmin},
	} {
		user := &domain.User{
			Username:     fixture.name,
			Email:        fixture.name + "@x.edu",
			Name:         fixture.name,
			PasswordHash: "x",
			Role:         fixture.role,
		}
		require.NoError(t, f.users.Create(context.Background(), user))
		*fixture.target = user
	}
	return f
}

func TestSendAndList(t *testing.T) {
	ctx := context.Background()
	f := newNotificationFixture(t)

	sent, err := f.svc.Send(ctx, f.alice.ID, "Maintenance", "Offline tonight", &f.admin.ID)
	require.NoError(t, err)
	assert.False(t, sent.IsRead)

	list, err := f.svc.List(ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Maintenance", list[0].Title)

	// other inboxes stay empty
	list, err = f.svc.List(ctx, f.bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSendUnknownReceiver(t *testing.T) {
	f := newNotificationFixture(t)

	_, err := f.svc.Send(context.Background(), "missing-id", "Hi", "there", nil)
	require.Error(t, err)
	assert.True(t, util.IsNotFound(err))
}

func TestSendBulkPartialDelivery(t *testing.T) {
	ctx := context.Background()
	f := newNotificationFixture(t)

	receivers := []string{f.alice.ID, "missing-id", f.bob.ID}
	delivered := f.svc.SendBulk(ctx, receivers, "Notice", "Campus closed Friday", &f.admin.ID)
	assert.Equal(t, 2, delivered)

	assert.Equal(t, 1, f.svc.UnreadCount(ctx, f.alice.ID))
	assert.Equal(t, 1, f.svc.UnreadCount(ctx, f.bob.ID))
}

func TestMarkReadIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newNotificationFixture(t)

	sent, err := f.svc.Send(ctx, f.alice.ID, "Hi", "msg", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, f.svc.UnreadCount(ctx, f.alice.ID))

	require.NoError(t, f.svc.MarkRead(ctx, sent.ID))
	assert.Equal(t, 0, f.svc.UnreadCount(ctx, f.alice.ID))

	require.NoError(t, f.svc.MarkRead(ctx, sent.ID))
	assert.Equal(t, 0, f.svc.UnreadCount(ctx, f.alice.ID))
}

func TestMarkAllReadScopedToReceiver(t *testing.T) {
	ctx := context.Background()
	f := newNotificationFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.svc.Send(ctx, f.alice.ID, "Hi", "msg", nil)
		require.NoError(t, err)
	}
	_, err := f.svc.Send(ctx, f.bob.ID, "Hi", "msg", nil)
	require.NoError(t, err)

	count, err := f.svc.MarkAllRead(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.Equal(t, 0, f.svc.UnreadCount(ctx, f.alice.ID))
	assert.Equal(t, 1, f.svc.UnreadCount(ctx, f.bob.ID))
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	f := newNotificationFixture(t)

	for i := 0; i < 2; i++ {
		_, err := f.svc.Send(ctx, f.alice.ID, "Hi", "msg", nil)
		require.NoError(t, err)
	}

	count, err := f.svc.DeleteAll(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	list, err := f.svc.List(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
