package service

import (
	"context"

	"poi-be-svc/internal/models"
	"poi-be-svc/internal/models/response"
	"poi-be-svc/internal/repository"
	"poi-be-svc/pkg/logger"
)

// UserService interface defines user service methods
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.AuthUser, error)
}

// userService implements UserService interface
type userService struct {
	userRepo repository.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile gets the account of the given user without the password hash
func (s *userService) GetProfile(ctx context.Context, userID string) (*response.AuthUser, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to get user")
		return nil, lookupError(err, "User not found")
	}

	profile := newAuthUser(user)
	return &profile, nil
}

func newAuthUser(user *models.User) response.AuthUser {
	return response.AuthUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role.String(),
	}
}
