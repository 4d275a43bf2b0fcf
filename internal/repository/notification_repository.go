package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/campus-helpdesk/internal/domain"
)

// NotificationRepository encapsulates notification persistence. The bulk
// mutators are scoped to a single receiver and report affected row counts.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByReceiver(ctx context.Context, receiverID string) ([]domain.Notification, error)
	CountUnreadByReceiver(ctx context.Context, receiverID string) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, receiverID string) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteAllByReceiver(ctx context.Context, receiverID string) (int, error)
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository instantiates repository.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

const notificationColumns = `id, receiver_id, title, message, is_read, created_by, created_at`

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	const query = `
        INSERT INTO notifications (receiver_id, title, message, is_read, created_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		notification.ReceiverID,
		notification.Title,
		notification.Message,
		notification.IsRead,
		notification.CreatedBy,
	).Scan(&notification.ID, &notification.CreatedAt)
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	var notification domain.Notification
	if err := r.pool.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id=$1`, id).Scan(
		&notification.ID,
		&notification.ReceiverID,
		&notification.Title,
		&notification.Message,
		&notification.IsRead,
		&notification.CreatedBy,
		&notification.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) ListByReceiver(ctx context.Context, receiverID string) ([]domain.Notification, error) {
	const query = `SELECT ` + notificationColumns + ` FROM notifications WHERE receiver_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var notification domain.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.ReceiverID,
			&notification.Title,
			&notification.Message,
			&notification.IsRead,
			&notification.CreatedBy,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, notification)
	}
	return result, rows.Err()
}

func (r *notificationRepository) CountUnreadByReceiver(ctx context.Context, receiverID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE receiver_id=$1 AND is_read=FALSE`, receiverID).Scan(&count)
	return count, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, receiverID string) (int, error) {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE notifications SET is_read=TRUE WHERE receiver_id=$1 AND is_read=FALSE`, receiverID)
	if err != nil {
		return 0, err
	}
	return int(cmd.RowsAffected()), nil
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *notificationRepository) DeleteAllByReceiver(ctx context.Context, receiverID string) (int, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE receiver_id=$1`, receiverID)
	if err != nil {
		return 0, err
	}
	return int(cmd.RowsAffected()), nil
}
