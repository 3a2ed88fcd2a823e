package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
	"github.com/faaaroooqi/Feedstagram-app/internal/repository"
)

// UpdateProfileRequest carries optional replacements; empty fields keep
// their current value.
type UpdateProfileRequest struct {
	Username   string
	Bio        string
	ProfilePic string
	Password   string
}

type UserService interface {
	UpdateProfile(ctx context.Context, actorID, targetID string, req UpdateProfileRequest) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) UpdateProfile(ctx context.Context, actorID, targetID string, req UpdateProfileRequest) (*models.User, error) {
	if actorID != targetID {
		return nil, ErrForbidden
	}

	user, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.ProfilePic != "" {
		user.ProfilePic = req.ProfilePic
	}

	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	err = s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}
