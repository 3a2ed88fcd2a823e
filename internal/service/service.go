package service

import (
	"errors"

	"github.com/faaaroooqi/Feedstagram-app/internal/config"
	"github.com/faaaroooqi/Feedstagram-app/internal/repository"
	"github.com/faaaroooqi/Feedstagram-app/internal/storage"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so login failures don't reveal which handles exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("not authorized")
	ErrNoImages           = errors.New("at least one image is required")
)

type Service struct {
	Auth         AuthService
	Feed         FeedService
	Engagement   EngagementService
	Post         PostService
	Notification NotificationService
	User         UserService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:         NewAuthService(rep.User, cfg),
		Feed:         NewFeedService(rep.Post, rep.Comment, rep.User, cfg),
		Engagement:   NewEngagementService(rep.Post, rep.Comment, rep.Notification),
		Post:         NewPostService(rep.Post, storage, cfg),
		Notification: NewNotificationService(rep.Notification),
		User:         NewUserService(rep.User),
	}
}
