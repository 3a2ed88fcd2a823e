package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post, imageURLs []string) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	ListPage(ctx context.Context, lastID string, limit int) ([]models.Post, error)
	ListByUser(ctx context.Context, userID string) ([]models.Post, error)
	UpdateCaption(ctx context.Context, postID, caption string) error
	Delete(ctx context.Context, postID string) error
	ImagesByPost(ctx context.Context, postID string) ([]models.Image, error)
	AddLike(ctx context.Context, postID, userID string) (bool, error)
	RemoveLike(ctx context.Context, postID, userID string) (bool, error)
	LikedBy(ctx context.Context, postID string) ([]models.UserRef, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	UpdateText(ctx context.Context, commentID, text string) error
	Delete(ctx context.Context, commentID string) error
	AddLike(ctx context.Context, commentID, userID string) (bool, error)
	RemoveLike(ctx context.Context, commentID, userID string) (bool, error)
	LikedBy(ctx context.Context, commentID string) ([]models.UserRef, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]models.NotificationView, error)
	MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error)
}

type Repository struct {
	User         UserRepository
	Post         PostRepository
	Comment      CommentRepository
	Notification NotificationRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Post:         NewPostRepository(db),
		Comment:      NewCommentRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
