package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
)

// fakePostRepo serves pages the way the store does: newest first, strictly
// before the cursor id.
type fakePostRepo struct {
	MockPostRepository
	posts []models.Post // sorted by post_id descending
}

func (f *fakePostRepo) ListPage(ctx context.Context, lastID string, limit int) ([]models.Post, error) {
	page := []models.Post{}
	for _, post := range f.posts {
		if lastID != "" && post.PostID >= lastID {
			continue
		}
		page = append(page, post)
		if len(page) == limit {
			break
		}
	}
	return page, nil
}

func (f *fakePostRepo) ImagesByPost(ctx context.Context, postID string) ([]models.Image, error) {
	return []models.Image{}, nil
}

func (f *fakePostRepo) LikedBy(ctx context.Context, postID string) ([]models.UserRef, error) {
	return []models.UserRef{}, nil
}

func newFeedFixture(postCount int) (*fakePostRepo, *MockCommentRepository, *MockUserRepository) {
	postRepo := &fakePostRepo{}
	for i := postCount; i >= 1; i-- {
		postRepo.posts = append(postRepo.posts, models.Post{
			PostID:    fmt.Sprintf("p%02d", i),
			UserID:    "user-1",
			Caption:   fmt.Sprintf("post %d", i),
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		})
	}

	commentRepo := new(MockCommentRepository)
	commentRepo.On("ListByPost", mock.Anything, mock.Anything).Return([]models.Comment{}, nil)

	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByID", mock.Anything, "user-1").
		Return(&models.User{UserID: "user-1", Username: "alice"}, nil)

	return postRepo, commentRepo, userRepo
}

func TestFeedService_ListFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("extra row is trimmed and signals hasMore", func(t *testing.T) {
		postRepo, commentRepo, userRepo := newFeedFixture(3)
		svc := NewFeedService(postRepo, commentRepo, userRepo, testConfig())

		page, err := svc.ListFeed(ctx, "", 2)

		require.NoError(t, err)
		assert.Len(t, page.Posts, 2)
		assert.True(t, page.HasMore)
		require.NotNil(t, page.NextCursor)
		assert.Equal(t, "p02", *page.NextCursor)
		assert.Equal(t, "alice", page.Posts[0].User.Username)
	})

	t.Run("empty store", func(t *testing.T) {
		postRepo, commentRepo, userRepo := newFeedFixture(0)
		svc := NewFeedService(postRepo, commentRepo, userRepo, testConfig())

		page, err := svc.ListFeed(ctx, "", 10)

		require.NoError(t, err)
		assert.Empty(t, page.Posts)
		assert.False(t, page.HasMore)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("zero limit falls back to the configured page size", func(t *testing.T) {
		postRepo, commentRepo, userRepo := newFeedFixture(12)
		svc := NewFeedService(postRepo, commentRepo, userRepo, testConfig())

		page, err := svc.ListFeed(ctx, "", 0)

		require.NoError(t, err)
		assert.Len(t, page.Posts, 10)
		assert.True(t, page.HasMore)
	})

	t.Run("walking the cursor visits every post exactly once, newest first", func(t *testing.T) {
		postRepo, commentRepo, userRepo := newFeedFixture(7)
		svc := NewFeedService(postRepo, commentRepo, userRepo, testConfig())

		seen := []string{}
		cursor := ""
		for {
			page, err := svc.ListFeed(ctx, cursor, 3)
			require.NoError(t, err)

			for _, post := range page.Posts {
				seen = append(seen, post.PostID)
			}

			if !page.HasMore {
				break
			}
			cursor = *page.NextCursor
		}

		assert.Equal(t, []string{"p07", "p06", "p05", "p04", "p03", "p02", "p01"}, seen)
	})
}

func TestSelectTopComment(t *testing.T) {
	t1 := time.Now()
	t2 := t1.Add(time.Minute)

	like := func(n int) []models.UserRef {
		likes := make([]models.UserRef, n)
		for i := range likes {
			likes[i] = models.UserRef{UserID: fmt.Sprintf("u%d", i)}
		}
		return likes
	}

	t.Run("no likes means no top comment", func(t *testing.T) {
		comments := []models.CommentView{
			{CommentID: "c1", Likes: like(0), CreatedAt: t1},
			{CommentID: "c2", Likes: like(0), CreatedAt: t2},
		}

		assert.Nil(t, SelectTopComment(comments))
	})

	t.Run("most likes wins", func(t *testing.T) {
		comments := []models.CommentView{
			{CommentID: "c1", Likes: like(3), CreatedAt: t1},
			{CommentID: "c2", Likes: like(1), CreatedAt: t2},
		}

		top := SelectTopComment(comments)
		require.NotNil(t, top)
		assert.Equal(t, "c1", top.CommentID)
	})

	t.Run("ties break to the most recent comment", func(t *testing.T) {
		comments := []models.CommentView{
			{CommentID: "c1", Likes: like(2), CreatedAt: t1},
			{CommentID: "c2", Likes: like(2), CreatedAt: t2},
		}

		top := SelectTopComment(comments)
		require.NotNil(t, top)
		assert.Equal(t, "c2", top.CommentID)
	})

	t.Run("empty slice", func(t *testing.T) {
		assert.Nil(t, SelectTopComment(nil))
	})
}
