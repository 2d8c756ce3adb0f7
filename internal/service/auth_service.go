package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/repository"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/auth"
)

// AuthService handles login, logout and profile lookups
type AuthService struct {
	users      repository.UserStore
	jwtManager *auth.JWTManager
	rdb        *redis.Client
}

func NewAuthService(users repository.UserStore, jwtManager *auth.JWTManager, rdb *redis.Client) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
		rdb:        rdb,
	}
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid email or password")
		}
		return nil, errors.New("failed to find user")
	}

	// Compare password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	// Generate JWT token
	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &model.LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	// Parse token to get expiry
	claims, err := s.jwtManager.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	expiresIn := time.Until(claims.ExpiresAt.Time)
	if expiresIn <= 0 {
		return nil
	}

	// Blacklist token until it would have expired anyway
	return s.rdb.Set(ctx, "blacklist:"+tokenString, "revoked", expiresIn).Err()
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *AuthService) UpdateSettings(ctx context.Context, userID uuid.UUID, settings model.NotificationSettings) (*model.UserResponse, error) {
	if err := s.users.UpdateSettings(ctx, userID, settings); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *AuthService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	return s.users.UpdateFCMToken(ctx, userID, token)
}
