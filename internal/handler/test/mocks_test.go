package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
	"github.com/faaaroooqi/Feedstagram-app/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req service.SignupRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) VerifyToken(tokenString string) (*service.Identity, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Identity), args.Error(1)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) ListFeed(ctx context.Context, lastID string, limit int) (*models.FeedPage, error) {
	args := m.Called(ctx, lastID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeedPage), args.Error(1)
}

func (m *MockFeedService) ListUserPosts(ctx context.Context, userID string) ([]models.PostView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostView), args.Error(1)
}

func (m *MockFeedService) GetPost(ctx context.Context, postID string) (*models.PostView, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostView), args.Error(1)
}

func (m *MockFeedService) GetUserProfile(ctx context.Context, userID string) (*models.User, []models.PostView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).([]models.PostView), args.Error(2)
}

type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) TogglePostLike(ctx context.Context, actorID, postID string) (*service.ToggleResult, error) {
	args := m.Called(ctx, actorID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ToggleResult), args.Error(1)
}

func (m *MockEngagementService) ToggleCommentLike(ctx context.Context, actorID, commentID string) (*service.ToggleResult, error) {
	args := m.Called(ctx, actorID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ToggleResult), args.Error(1)
}

func (m *MockEngagementService) AddComment(ctx context.Context, actorID, postID, text string) (*models.Comment, *models.Notification, error) {
	args := m.Called(ctx, actorID, postID, text)
	var comment *models.Comment
	var notification *models.Notification
	if args.Get(0) != nil {
		comment = args.Get(0).(*models.Comment)
	}
	if args.Get(1) != nil {
		notification = args.Get(1).(*models.Notification)
	}
	return comment, notification, args.Error(2)
}

func (m *MockEngagementService) UpdateComment(ctx context.Context, actorID, commentID, text string) (*models.Comment, error) {
	args := m.Called(ctx, actorID, commentID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockEngagementService) DeleteComment(ctx context.Context, actorID, commentID string) (string, error) {
	args := m.Called(ctx, actorID, commentID)
	return args.String(0), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, userID, caption string, images []service.ImageUpload) (*models.Post, error) {
	args := m.Called(ctx, userID, caption, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, actorID, postID, caption string) error {
	args := m.Called(ctx, actorID, postID, caption)
	return args.Error(0)
}

func (m *MockPostService) DeletePost(ctx context.Context, actorID, postID string) error {
	args := m.Called(ctx, actorID, postID)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, recipientID string) ([]models.NotificationView, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NotificationView), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error) {
	args := m.Called(ctx, notificationID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateProfile(ctx context.Context, actorID, targetID string, req service.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, actorID, targetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
