package service

import (
	"context"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
	"github.com/faaaroooqi/Feedstagram-app/internal/repository"
)

// ToggleResult reports the direction of a toggle, the like set after it and
// the notification it derived, if any.
type ToggleResult struct {
	Liked        bool                 `json:"liked"`
	Likes        []models.UserRef     `json:"likes"`
	Notification *models.Notification `json:"-"`
}

type EngagementService interface {
	TogglePostLike(ctx context.Context, actorID, postID string) (*ToggleResult, error)
	ToggleCommentLike(ctx context.Context, actorID, commentID string) (*ToggleResult, error)
	AddComment(ctx context.Context, actorID, postID, text string) (*models.Comment, *models.Notification, error)
	UpdateComment(ctx context.Context, actorID, commentID, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID string) (string, error)
}

type engagementService struct {
	postRepo         repository.PostRepository
	commentRepo      repository.CommentRepository
	notificationRepo repository.NotificationRepository
}

func NewEngagementService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, notificationRepo repository.NotificationRepository) EngagementService {
	return &engagementService{
		postRepo:         postRepo,
		commentRepo:      commentRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *engagementService) TogglePostLike(ctx context.Context, actorID, postID string) (*ToggleResult, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// delete first: a hit means this was an unlike. Both legs are keyed by
	// (post, actor), so two different actors toggling at once both land.
	removed, err := s.postRepo.RemoveLike(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}

	result := &ToggleResult{Liked: !removed}

	if !removed {
		added, err := s.postRepo.AddLike(ctx, postID, actorID)
		if err != nil {
			return nil, err
		}

		// notify only on the like transition, never for own posts
		if added && post.UserID != actorID {
			notification := &models.Notification{
				RecipientID: post.UserID,
				SenderID:    actorID,
				Kind:        models.NotificationLikePost,
				PostID:      &post.PostID,
			}

			if err := s.notificationRepo.Create(ctx, notification); err != nil {
				return nil, err
			}
			result.Notification = notification
		}
	}

	likes, err := s.postRepo.LikedBy(ctx, postID)
	if err != nil {
		return nil, err
	}
	result.Likes = likes

	return result, nil
}

func (s *engagementService) ToggleCommentLike(ctx context.Context, actorID, commentID string) (*ToggleResult, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	removed, err := s.commentRepo.RemoveLike(ctx, commentID, actorID)
	if err != nil {
		return nil, err
	}

	result := &ToggleResult{Liked: !removed}

	if !removed {
		added, err := s.commentRepo.AddLike(ctx, commentID, actorID)
		if err != nil {
			return nil, err
		}

		if added && comment.UserID != actorID {
			notification := &models.Notification{
				RecipientID: comment.UserID,
				SenderID:    actorID,
				Kind:        models.NotificationLikeComment,
				PostID:      &comment.PostID,
				CommentID:   &comment.CommentID,
			}

			if err := s.notificationRepo.Create(ctx, notification); err != nil {
				return nil, err
			}
			result.Notification = notification
		}
	}

	likes, err := s.commentRepo.LikedBy(ctx, commentID)
	if err != nil {
		return nil, err
	}
	result.Likes = likes

	return result, nil
}

func (s *engagementService) AddComment(ctx context.Context, actorID, postID, text string) (*models.Comment, *models.Notification, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: actorID,
		Text:   text,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, nil, err
	}

	var notification *models.Notification
	if post.UserID != actorID {
		notification = &models.Notification{
			RecipientID: post.UserID,
			SenderID:    actorID,
			Kind:        models.NotificationCommentPost,
			PostID:      &post.PostID,
			CommentID:   &comment.CommentID,
		}

		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			return nil, nil, err
		}
	}

	return comment, notification, nil
}

func (s *engagementService) UpdateComment(ctx context.Context, actorID, commentID, text string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != actorID {
		return nil, ErrForbidden
	}

	err = s.commentRepo.UpdateText(ctx, commentID, text)
	if err != nil {
		return nil, err
	}

	comment.Text = text
	return comment, nil
}

// DeleteComment removes the comment and returns the owning post's id so the
// caller can re-read the post.
func (s *engagementService) DeleteComment(ctx context.Context, actorID, commentID string) (string, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return "", err
	}

	if comment.UserID != actorID {
		return "", ErrForbidden
	}

	err = s.commentRepo.Delete(ctx, commentID)
	if err != nil {
		return "", err
	}

	return comment.PostID, nil
}
