package service

import (
	"context"

	"github.com/faaaroooqi/Feedstagram-app/internal/config"
	"github.com/faaaroooqi/Feedstagram-app/internal/models"
	"github.com/faaaroooqi/Feedstagram-app/internal/repository"
)

type FeedService interface {
	ListFeed(ctx context.Context, lastID string, limit int) (*models.FeedPage, error)
	ListUserPosts(ctx context.Context, userID string) ([]models.PostView, error)
	GetPost(ctx context.Context, postID string) (*models.PostView, error)
	GetUserProfile(ctx context.Context, userID string) (*models.User, []models.PostView, error)
}

type feedService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	cfg         *config.Config
}

func NewFeedService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, userRepo repository.UserRepository, cfg *config.Config) FeedService {
	return &feedService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		cfg:         cfg,
	}
}

// ListFeed pages backwards through the feed. It asks the store for one row
// more than the page size: the extra row only tells us another page exists
// and never reaches the client.
func (s *feedService) ListFeed(ctx context.Context, lastID string, limit int) (*models.FeedPage, error) {
	if limit <= 0 {
		limit = s.cfg.FeedPageLimit
	}

	posts, err := s.postRepo.ListPage(ctx, lastID, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(posts) > limit
	if hasMore {
		posts = posts[:limit]
	}

	views, err := s.buildPostViews(ctx, posts)
	if err != nil {
		return nil, err
	}

	page := &models.FeedPage{
		Posts:   views,
		HasMore: hasMore,
	}

	if len(views) > 0 {
		page.NextCursor = &views[len(views)-1].PostID
	}

	return page, nil
}

func (s *feedService) ListUserPosts(ctx context.Context, userID string) ([]models.PostView, error) {
	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.buildPostViews(ctx, posts)
}

func (s *feedService) GetPost(ctx context.Context, postID string) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	view, err := s.buildPostView(ctx, post)
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (s *feedService) GetUserProfile(ctx context.Context, userID string) (*models.User, []models.PostView, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	views, err := s.ListUserPosts(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, views, nil
}

func (s *feedService) buildPostViews(ctx context.Context, posts []models.Post) ([]models.PostView, error) {
	views := make([]models.PostView, 0, len(posts))

	for i := range posts {
		view, err := s.buildPostView(ctx, &posts[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return views, nil
}

// buildPostView is the read-side join: the stored post holds references
// only, the view inlines author, images, liking users and comments.
func (s *feedService) buildPostView(ctx context.Context, post *models.Post) (*models.PostView, error) {
	owner, err := s.userRepo.GetUserByID(ctx, post.UserID)
	if err != nil {
		return nil, err
	}

	images, err := s.postRepo.ImagesByPost(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	imageURLs := make([]string, 0, len(images))
	for _, image := range images {
		imageURLs = append(imageURLs, image.ImageURL)
	}

	likes, err := s.postRepo.LikedBy(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	commentViews := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		commentOwner, err := s.userRepo.GetUserByID(ctx, comment.UserID)
		if err != nil {
			return nil, err
		}

		commentLikes, err := s.commentRepo.LikedBy(ctx, comment.CommentID)
		if err != nil {
			return nil, err
		}

		commentViews = append(commentViews, models.CommentView{
			CommentID: comment.CommentID,
			Text:      comment.Text,
			User:      commentOwner.Ref(),
			Likes:     commentLikes,
			CreatedAt: comment.CreatedAt,
		})
	}

	return &models.PostView{
		PostID:     post.PostID,
		Caption:    post.Caption,
		Images:     imageURLs,
		User:       owner.Ref(),
		Likes:      likes,
		Comments:   commentViews,
		TopComment: SelectTopComment(commentViews),
		CreatedAt:  post.CreatedAt,
	}, nil
}

// SelectTopComment picks the comment with the most likes, ties going to the
// most recently created one. Comments with zero likes never qualify.
func SelectTopComment(comments []models.CommentView) *models.CommentView {
	var top *models.CommentView

	for i := range comments {
		candidate := &comments[i]
		if len(candidate.Likes) == 0 {
			continue
		}

		if top == nil ||
			len(candidate.Likes) > len(top.Likes) ||
			(len(candidate.Likes) == len(top.Likes) && candidate.CreatedAt.After(top.CreatedAt)) ||
			(len(candidate.Likes) == len(top.Likes) && candidate.CreatedAt.Equal(top.CreatedAt) && candidate.CommentID > top.CommentID) {
			top = candidate
		}
	}

	return top
}
