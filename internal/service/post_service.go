package service

import (
	"context"
	"io"
	"log"

	"github.com/rs/xid"

	"github.com/faaaroooqi/Feedstagram-app/internal/config"
	"github.com/faaaroooqi/Feedstagram-app/internal/models"
	"github.com/faaaroooqi/Feedstagram-app/internal/repository"
	"github.com/faaaroooqi/Feedstagram-app/internal/storage"
)

type ImageUpload struct {
	FileName string
	File     io.Reader
	Size     int64
}

type PostService interface {
	CreatePost(ctx context.Context, userID, caption string, images []ImageUpload) (*models.Post, error)
	UpdatePost(ctx context.Context, actorID, postID, caption string) error
	DeletePost(ctx context.Context, actorID, postID string) error
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, userID, caption string, images []ImageUpload) (*models.Post, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	post := &models.Post{
		PostID:  xid.New().String(),
		UserID:  userID,
		Caption: caption,
	}

	objectNames := make([]string, 0, len(images))
	imageURLs := make([]string, 0, len(images))

	for _, image := range images {
		objectName, imageURL, err := p.storage.UploadImage(ctx, post.PostID, image.FileName, image.File, image.Size)
		if err != nil {
			p.cleanupObjects(ctx, objectNames)
			return nil, err
		}

		objectNames = append(objectNames, objectName)
		imageURLs = append(imageURLs, imageURL)
	}

	err := p.postRepo.Create(ctx, post, imageURLs)
	if err != nil {
		p.cleanupObjects(ctx, objectNames)
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, actorID, postID, caption string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != actorID {
		return ErrForbidden
	}

	return p.postRepo.UpdateCaption(ctx, postID, caption)
}

func (p *postService) DeletePost(ctx context.Context, actorID, postID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != actorID {
		return ErrForbidden
	}

	images, err := p.postRepo.ImagesByPost(ctx, postID)
	if err != nil {
		return err
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	// blob removal is best-effort, an orphaned object is not a user error
	for _, image := range images {
		objectName := storage.ObjectNameFromURL(image.ImageURL, p.cfg.MinIO.BucketName)
		if objectName == "" {
			continue
		}
		if err := p.storage.DeleteImage(ctx, objectName); err != nil {
			log.Printf("Warning: failed to delete image object %s: %v", objectName, err)
		}
	}

	return nil
}

func (p *postService) cleanupObjects(ctx context.Context, objectNames []string) {
	for _, objectName := range objectNames {
		if err := p.storage.DeleteImage(ctx, objectName); err != nil {
			log.Printf("Warning: failed to clean up image object %s: %v", objectName, err)
		}
	}
}
