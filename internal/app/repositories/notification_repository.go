package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
)

// INotificationRepository defines the interface for notification database operations
type INotificationRepository interface {
	CreateForUsers(ctx context.Context, userIDs []int64, notifType, title, detail string) error
	ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateForUsers writes one notification row per recipient.
func (r *NotificationRepository) CreateForUsers(ctx context.Context, userIDs []int64, notifType, title, detail string) error {
	if len(userIDs) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO notifications (user_id, type, title, detail)
		SELECT unnest($1::bigint[]), $2, $3, $4`,
		userIDs, notifType, title, detail)

	if err != nil {
		return fmt.Errorf("error creating notifications: %w", err)
	}
	return nil
}

// ListByUser returns a user's notifications, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, title, detail, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Detail, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkAllRead marks every notification of a user as read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		return fmt.Errorf("error marking notifications read: %w", err)
	}
	return nil
}
