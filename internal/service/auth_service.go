package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/faaaroooqi/Feedstagram-app/internal/config"
	"github.com/faaaroooqi/Feedstagram-app/internal/models"
	"github.com/faaaroooqi/Feedstagram-app/internal/repository"
)

type SignupRequest struct {
	Username   string
	Password   string
	Bio        string
	ProfilePic string
}

// Identity is the caller extracted from a verified bearer token.
type Identity struct {
	UserID   string
	Username string
}

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	VerifyToken(tokenString string) (*Identity, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	user := &models.User{
		Username:   req.Username,
		Bio:        req.Bio,
		ProfilePic: req.ProfilePic,
	}

	// the unique index on username is the arbiter, not a pre-check
	err := s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("authentication failed: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.UserID,
		"username": user.Username,
		"exp":      time.Now().Add(s.cfg.TokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) VerifyToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok1 := claims["userId"].(string)
	username, ok2 := claims["username"].(string)
	if !ok1 || !ok2 {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:   userID,
		Username: username,
	}, nil
}
