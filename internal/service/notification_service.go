package service

import (
	"context"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
	"github.com/faaaroooqi/Feedstagram-app/internal/repository"
)

// notificationFeedLimit bounds the feed to the most recent entries.
const notificationFeedLimit = 20

type NotificationService interface {
	List(ctx context.Context, recipientID string) ([]models.NotificationView, error)
	MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) List(ctx context.Context, recipientID string) ([]models.NotificationView, error) {
	return s.notificationRepo.ListByRecipient(ctx, recipientID, notificationFeedLimit)
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, recipientID string) (*models.Notification, error) {
	return s.notificationRepo.MarkRead(ctx, notificationID, recipientID)
}
