package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.NotificationID == "" {
		notification.NotificationID = uuid.New().String()
	}

	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notifications (notification_id, recipient_id, sender_id, kind, post_id, comment_id, read, created_at)
		VALUES (:notification_id, :recipient_id, :sender_id, :kind, :post_id, :comment_id, :read, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

type notificationRow struct {
	NotificationID   string         `db:"notification_id"`
	Kind             string         `db:"kind"`
	Read             bool           `db:"read"`
	CreatedAt        time.Time      `db:"created_at"`
	PostID           sql.NullString `db:"post_id"`
	PostText         sql.NullString `db:"post_text"`
	CommentID        sql.NullString `db:"comment_id"`
	CommentText      sql.NullString `db:"comment_text"`
	SenderID         string         `db:"sender_id"`
	SenderUsername   string         `db:"sender_username"`
	SenderProfilePic string         `db:"sender_profile_pic"`
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]models.NotificationView, error) {
	query := `
		SELECT n.notification_id, n.kind, n.read, n.created_at,
		       n.post_id, p.caption AS post_text,
		       n.comment_id, c.text AS comment_text,
		       u.user_id AS sender_id, u.username AS sender_username, u.profile_pic AS sender_profile_pic
		FROM notifications n
		JOIN users u ON u.user_id = n.sender_id
		LEFT JOIN posts p ON p.post_id = n.post_id
		LEFT JOIN comments c ON c.comment_id = n.comment_id
		WHERE n.recipient_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2
	`

	rows := []notificationRow{}
	err := r.db.SelectContext(ctx, &rows, query, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	views := make([]models.NotificationView, 0, len(rows))
	for _, row := range rows {
		view := models.NotificationView{
			NotificationID: row.NotificationID,
			Kind:           row.Kind,
			Read:           row.Read,
			CreatedAt:      row.CreatedAt,
			Sender: models.UserRef{
				UserID:     row.SenderID,
				Username:   row.SenderUsername,
				ProfilePic: row.SenderProfilePic,
			},
		}

		if row.PostID.Valid {
			view.PostID = &row.PostID.String
		}
		if row.PostText.Valid {
			view.PostText = &row.PostText.String
		}
		if row.CommentID.Valid {
			view.CommentID = &row.CommentID.String
		}
		if row.CommentText.Valid {
			view.CommentText = &row.CommentText.String
		}

		views = append(views, view)
	}

	return views, nil
}

// MarkRead flips the read flag only when the notification belongs to
// recipientID; a mismatch is indistinguishable from a missing row.
func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error) {
	query := `
		UPDATE notifications SET read = TRUE
		WHERE notification_id = $1 AND recipient_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, notificationID, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	var notification models.Notification
	err = r.db.GetContext(ctx, &notification, `SELECT * FROM notifications WHERE notification_id = $1`, notificationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return &notification, nil
}
