package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post, imageURLs []string) error {
	if post.PostID == "" {
		post.PostID = xid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO posts (post_id, user_id, caption, created_at, updated_at)
		VALUES (:post_id, :user_id, :caption, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	imageQuery := `
		INSERT INTO post_images (image_id, post_id, image_url, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i, imageURL := range imageURLs {
		_, err = r.db.ExecContext(ctx, imageQuery, uuid.New().String(), post.PostID, imageURL, i, now)
		if err != nil {
			return fmt.Errorf("failed to create post image: %w", err)
		}
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// ListPage returns up to limit posts created strictly before lastID, newest
// first. xids sort by creation time, so the id comparison is the cursor.
func (r *PostRepositoryImpl) ListPage(ctx context.Context, lastID string, limit int) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE ($1 = '' OR post_id < $1)
		ORDER BY post_id DESC
		LIMIT $2
	`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, lastID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE user_id = $1
		ORDER BY post_id DESC
	`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) UpdateCaption(ctx context.Context, postID, caption string) error {
	query := `
		UPDATE posts SET
			caption = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE post_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, caption, postID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
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

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
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

func (r *PostRepositoryImpl) ImagesByPost(ctx context.Context, postID string) ([]models.Image, error) {
	query := `SELECT * FROM post_images WHERE post_id = $1 ORDER BY position`

	images := []models.Image{}
	err := r.db.SelectContext(ctx, &images, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post images: %w", err)
	}

	return images, nil
}

// AddLike inserts a membership row keyed by (post_id, user_id). ON CONFLICT
// keeps the call safe against a concurrent like by the same user: the row
// either exists or it doesn't, there is no array to overwrite.
func (r *PostRepositoryImpl) AddLike(ctx context.Context, postID, userID string) (bool, error) {
	query := `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to like post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check inserted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *PostRepositoryImpl) RemoveLike(ctx context.Context, postID, userID string) (bool, error) {
	query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to unlike post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *PostRepositoryImpl) LikedBy(ctx context.Context, postID string) ([]models.UserRef, error) {
	query := `
		SELECT u.user_id, u.username, u.profile_pic
		FROM post_likes pl
		JOIN users u ON u.user_id = pl.user_id
		WHERE pl.post_id = $1
		ORDER BY pl.liked_at
	`

	likes := []models.UserRef{}
	err := r.db.SelectContext(ctx, &likes, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post likes: %w", err)
	}

	return likes, nil
}
