package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/execution-hub/presentation-hub/internal/domain/notification"
)

const notificationColumns = `id, notification_id, product_id, type, level, to_company, message, context, status, retry_count, max_retries, last_error, created_at, sent_at, failed_at`

// NotificationRepository implements notification.Repository.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notifications
		(notification_id, product_id, type, level, to_company, message, context, status, retry_count, max_retries, last_error, created_at, sent_at, failed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`, n.NotificationID, n.ProductID, n.Type, n.Level, n.ToCompany, n.Message, contextOrEmpty(n.Context), n.Status, n.RetryCount, n.MaxRetries, n.LastError, n.CreatedAt, n.SentAt, n.FailedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, notificationID uuid.UUID) (*notification.Notification, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE notification_id=$1`, notificationID)
	n, err := scanNotification(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return n, err
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE notifications
		SET status=$1, retry_count=$2, max_retries=$3, last_error=$4, sent_at=$5, failed_at=$6
		WHERE notification_id=$7
	`, n.Status, n.RetryCount, n.MaxRetries, n.LastError, n.SentAt, n.FailedAt, n.NotificationID)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	return r.list(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications WHERE status='PENDING' ORDER BY created_at ASC LIMIT $1
	`, limit)
}

func (r *NotificationRepository) ListRetryable(ctx context.Context, limit int) ([]*notification.Notification, error) {
	return r.list(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE status='FAILED' AND retry_count < max_retries
		ORDER BY created_at ASC LIMIT $1
	`, limit)
}

func (r *NotificationRepository) list(ctx context.Context, query string, args ...interface{}) ([]*notification.Notification, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var out []*notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func scanNotification(row pgx.Row) (*notification.Notification, error) {
	var n notification.Notification
	var ctxData []byte
	if err := row.Scan(&n.ID, &n.NotificationID, &n.ProductID, &n.Type, &n.Level, &n.ToCompany, &n.Message, &ctxData, &n.Status, &n.RetryCount, &n.MaxRetries, &n.LastError, &n.CreatedAt, &n.SentAt, &n.FailedAt); err != nil {
		return nil, err
	}
	if len(ctxData) > 0 {
		n.Context = ctxData
	}
	return &n, nil
}

func contextOrEmpty(raw []byte) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}
