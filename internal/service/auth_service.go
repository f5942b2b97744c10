package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"poi-be-svc/internal/auth"
	"poi-be-svc/internal/models"
	"poi-be-svc/internal/models/response"
	"poi-be-svc/internal/repository"
	"poi-be-svc/pkg/apperror"
	"poi-be-svc/pkg/logger"
)

const invalidCredentials = "Invalid credentials"

// AuthService issues tokens for registered accounts
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*response.AuthResponse, error)
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret1"`
	Name     string `json:"name" binding:"required" example:"Jane"`
}

// LoginRequest represents the request to sign in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager, logger *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// NormalizeEmail trims and lowercases an address for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword bcrypt-hashes a plain password
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Register creates a user account with the user role and signs a token for it
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*response.AuthResponse, error) {
	email := NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("Name is required",
			apperror.FieldError{Field: "name", Message: "name is required"})
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperror.Validation("User already exists",
			apperror.FieldError{Field: "email", Message: "email is already registered"})
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperror.Store(err)
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.StoreFailure, "Failed to hash password")
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		Name:     name,
		Role:     auth.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.WithError(err).WithField("email", email).Error("Failed to create user")
		return nil, apperror.Store(err)
	}

	s.logger.WithField("user_id", user.ID).Info("User registered successfully")
	return s.issue(user)
}

// Login verifies credentials and signs a token
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*response.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Validation(invalidCredentials)
		}
		return nil, apperror.Store(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.WithField("user_id", user.ID).Warn("Login rejected")
		return nil, apperror.Validation(invalidCredentials)
	}

	return s.issue(user)
}

func (s *authService) issue(user *models.User) (*response.AuthResponse, error) {
	role, ok := auth.ParseRole(string(user.Role))
	if !ok {
		return nil, apperror.New(apperror.Forbidden, "Account role is not recognized")
	}

	token, err := s.tokens.Issue(user.ID, user.Email, role)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.StoreFailure, "Failed to sign token")
	}

	return &response.AuthResponse{
		Token: token,
		User:  newAuthUser(user),
	}, nil
}
