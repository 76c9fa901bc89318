// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/auth"
	"github.com/your-org/storefront/internal/pkg/validation"
)

// Service handles user business logic
type Service struct {
	repo            Repository
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
	log             logrus.FieldLogger
}

// NewService creates a new user service
func NewService(repo Repository, cfg *config.Config, log logrus.FieldLogger) *Service {
	return &Service{
		repo:            repo,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
		log:             log,
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    Profile `json:"user"`
}

// Register creates a new user account and signs it in
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	// Check if user already exists
	_, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}

	s.log.WithField("user_id", user.ID).Info("user registered")

	return s.issue(&user)
}

// Login authenticates a user. An unknown email and a wrong password are
// reported identically.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		var errs validation.Errors
		errs.Add("credentials", "Please provide email and password")
		return nil, errs
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.passwordManager.VerifyPassword(req.Password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

// Verify checks a bearer token and returns the user id it carries. It returns
// false for missing, malformed, expired or wrongly signed tokens.
func (s *Service) Verify(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil || claims.ID == "" {
		return "", false
	}
	return claims.ID, true
}

// GetProfile gets user profile by ID
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

func (s *Service) issue(user *User) (*AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{
		Success: true,
		Token:   token,
		User:    user.Profile(),
	}, nil
}

func (s *Service) validateRegistration(req *RegisterRequest) error {
	var errs validation.Errors
	if strings.TrimSpace(req.Name) == "" {
		errs.Add("name", "Please provide a name")
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		errs.Add("email", "Please provide a valid email")
	}
	if err := s.passwordManager.ValidatePassword(req.Password); err != nil {
		errs.Add("password", "Password %s", strings.TrimPrefix(err.Error(), "password "))
	}
	return errs.Err()
}
