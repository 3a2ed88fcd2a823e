package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
)

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = xid.New().String()
	}

	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	query := `
		INSERT INTO comments (comment_id, post_id, user_id, text, created_at, updated_at)
		VALUES (:comment_id, :post_id, :user_id, :text, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	query := `SELECT * FROM comments WHERE comment_id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *CommentRepositoryImpl) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
		SELECT * FROM comments
		WHERE post_id = $1
		ORDER BY comment_id
	`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) UpdateText(ctx context.Context, commentID, text string) error {
	query := `
		UPDATE comments SET
			text = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE comment_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, text, commentID)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CommentRepositoryImpl) AddLike(ctx context.Context, commentID, userID string) (bool, error) {
	query := `
		INSERT INTO comment_likes (comment_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (comment_id, user_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, commentID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to like comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check inserted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *CommentRepositoryImpl) RemoveLike(ctx context.Context, commentID, userID string) (bool, error) {
	query := `DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, commentID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to unlike comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *CommentRepositoryImpl) LikedBy(ctx context.Context, commentID string) ([]models.UserRef, error) {
	query := `
		SELECT u.user_id, u.username, u.profile_pic
		FROM comment_likes cl
		JOIN users u ON u.user_id = cl.user_id
		WHERE cl.comment_id = $1
		ORDER BY cl.liked_at
	`

	likes := []models.UserRef{}
	err := r.db.SelectContext(ctx, &likes, query, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment likes: %w", err)
	}

	return likes, nil
}
