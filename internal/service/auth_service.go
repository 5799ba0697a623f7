package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hasanackl/YemekTarifiSitesi/internal/auth"
	"github.com/hasanackl/YemekTarifiSitesi/internal/config"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/hasanackl/YemekTarifiSitesi/internal/repository"
	"github.com/hasanackl/YemekTarifiSitesi/internal/validation"
	"github.com/rs/zerolog"
)

// authService implements AuthService
type authService struct {
	users     repository.UserRepository
	tokens    *auth.TokenIssuer
	passwords *auth.PasswordHasher
	cfg       *config.AuthConfig
	log       zerolog.Logger
}

func newAuthService(users repository.UserRepository, tokens *auth.TokenIssuer, passwords *auth.PasswordHasher, cfg *config.AuthConfig, log zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		cfg:       cfg,
		log:       log.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new account with the User role
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := newValidationErrors(validation.ValidateRegister(req)); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)

	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        req.Email,
		PasswordHash: hash,
		Roles:        []string{models.RoleUser},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues a signed session token.
// The response does not reveal whether the username or the password was
// wrong; the logs do.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		s.log.Warn().Str("username", req.Username).Msg("Login failed: unknown user")
		return "", ErrInvalidCredentials
	}

	if !s.passwords.Compare(user.PasswordHash, req.Password) {
		s.log.Warn().Str("username", req.Username).Msg("Login failed: bad password")
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Roles)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("User logged in")
	return token, nil
}

// ResetPassword replaces a user's password by username
func (s *authService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if err := newValidationErrors(validation.ValidatePassword(req.NewPassword)); err != nil {
		return err
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	hash, err := s.passwords.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("Password reset")
	return nil
}

// EnsureAdmin creates the configured admin account when it does not exist
func (s *authService) EnsureAdmin(ctx context.Context) error {
	if s.cfg.AdminUsername == "" {
		return nil
	}

	exists, err := s.users.UsernameExists(ctx, s.cfg.AdminUsername)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := s.passwords.Hash(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		ID:           uuid.New().String(),
		Username:     s.cfg.AdminUsername,
		Email:        s.cfg.AdminEmail,
		PasswordHash: hash,
		Roles:        []string{models.RoleUser, models.RoleAdmin},
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	s.log.Info().Str("username", admin.Username).Msg("Admin account created")
	return nil
}
