package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hasanackl/YemekTarifiSitesi/internal/auth"
	"github.com/hasanackl/YemekTarifiSitesi/internal/config"
	"github.com/hasanackl/YemekTarifiSitesi/internal/mocks"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/rs/zerolog"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:   "test-secret",
		JWTIssuer:   "recipe-api",
		JWTAudience: "recipe-api-clients",
		TokenTTL:    time.Hour,
		BcryptCost:  4, // minimum cost keeps tests fast
	}
}

func setupAuthService() (AuthService, *mocks.MockUserRepository, *auth.TokenIssuer) {
	cfg := testAuthConfig()
	users := mocks.NewMockUserRepository()
	tokens := auth.NewTokenIssuer(cfg)
	passwords := auth.NewPasswordHasher(cfg.BcryptCost)
	svc := newAuthService(users, tokens, passwords, cfg, zerolog.Nop())
	return svc, users, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, users, tokens := setupAuthService()

	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "ayse",
		Email:    "ayse@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Error("password must be stored hashed")
	}
	if len(user.Roles) != 1 || user.Roles[0] != models.RoleUser {
		t.Errorf("expected new users to get the User role only, got %v", user.Roles)
	}
	if users.ByUsername["ayse"] == nil {
		t.Fatal("expected user to be persisted")
	}

	token, err := svc.Login(context.Background(), &models.LoginRequest{Username: "ayse", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if identity.Username != "ayse" || identity.UserID != user.ID {
		t.Errorf("token carries wrong identity: %+v", identity)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _, _ := setupAuthService()

	req := &models.RegisterRequest{Username: "ayse", Email: "ayse@example.com", Password: "s3cret-pass"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), req); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}

	other := &models.RegisterRequest{Username: "ayse2", Email: "ayse@example.com", Password: "s3cret-pass"}
	if _, err := svc.Register(context.Background(), other); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _, _ := setupAuthService()

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "ayse",
		Email:    "not-an-email",
		Password: "short",
	})
	var vErrs *ValidationErrors
	if !errors.As(err, &vErrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(vErrs.Errors) != 2 {
		t.Errorf("expected errors on email and password, got %v", vErrs.Errors)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _, _ := setupAuthService()
	if _, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "ayse", Email: "ayse@example.com", Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown user and bad password produce the same outcome
	if _, err := svc.Login(context.Background(), &models.LoginRequest{Username: "nobody", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), &models.LoginRequest{Username: "ayse", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	svc, _, _ := setupAuthService()
	if _, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "ayse", Email: "ayse@example.com", Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Username: "nobody", NewPassword: "new-password",
	}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	if err := svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Username: "ayse", NewPassword: "new-password",
	}); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), &models.LoginRequest{Username: "ayse", Password: "s3cret-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password must no longer work")
	}
	if _, err := svc.Login(context.Background(), &models.LoginRequest{Username: "ayse", Password: "new-password"}); err != nil {
		t.Errorf("new password login failed: %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	cfg := testAuthConfig()
	cfg.AdminUsername = "admin"
	cfg.AdminEmail = "admin@example.com"
	cfg.AdminPassword = "admin-password"

	users := mocks.NewMockUserRepository()
	svc := newAuthService(users, auth.NewTokenIssuer(cfg), auth.NewPasswordHasher(cfg.BcryptCost), cfg, zerolog.Nop())

	if err := svc.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	admin := users.ByUsername["admin"]
	if admin == nil {
		t.Fatal("expected admin account to be created")
	}
	hasAdminRole := false
	for _, r := range admin.Roles {
		if r == models.RoleAdmin {
			hasAdminRole = true
		}
	}
	if !hasAdminRole {
		t.Errorf("expected Admin role, got %v", admin.Roles)
	}

	// Second call is a no-op
	if err := svc.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("second EnsureAdmin failed: %v", err)
	}
	if len(users.Users) != 1 {
		t.Errorf("expected exactly one account, got %d", len(users.Users))
	}
}

func TestEnsureAdminUnconfigured(t *testing.T) {
	svc, users, _ := setupAuthService()
	if err := svc.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if len(users.Users) != 0 {
		t.Error("no account should be created without configuration")
	}
}
