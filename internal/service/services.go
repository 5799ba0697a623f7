package service

import (
	"context"

	"github.com/hasanackl/YemekTarifiSitesi/internal/auth"
	"github.com/hasanackl/YemekTarifiSitesi/internal/config"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/hasanackl/YemekTarifiSitesi/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for account operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
	EnsureAdmin(ctx context.Context) error
}

// RecipeService defines the interface for catalog operations
type RecipeService interface {
	List(ctx context.Context, identity *auth.Identity) ([]models.RecipeResponse, error)
	Get(ctx context.Context, identity *auth.Identity, id string) (*models.RecipeResponse, error)
	ListByCategory(ctx context.Context, identity *auth.Identity, category string) ([]models.RecipeResponse, error)
	Search(ctx context.Context, identity *auth.Identity, params models.SearchParams) (*models.PagedResult, error)
	Create(ctx context.Context, identity *auth.Identity, req *models.RecipeRequest) (*models.Recipe, error)
	Update(ctx context.Context, identity *auth.Identity, id string, req *models.RecipeRequest) error
	Delete(ctx context.Context, identity *auth.Identity, id string) error
}

// CommentService defines the interface for comment operations
type CommentService interface {
	Add(ctx context.Context, identity *auth.Identity, req *models.CommentRequest) (*models.Comment, error)
	ListByRecipe(ctx context.Context, recipeID string) ([]*models.CommentResponse, error)
	Delete(ctx context.Context, identity *auth.Identity, id string) error
}

// FavoriteService defines the interface for favorite-mark operations
type FavoriteService interface {
	Add(ctx context.Context, identity *auth.Identity, recipeID string) error
	List(ctx context.Context, identity *auth.Identity) ([]string, error)
	Remove(ctx context.Context, identity *auth.Identity, recipeID string) error
}

// Services holds all service interfaces
type Services struct {
	Auth     AuthService
	Recipe   RecipeService
	Comment  CommentService
	Favorite FavoriteService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	tokens := auth.NewTokenIssuer(&cfg.Auth)
	passwords := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	return &Services{
		Auth:     newAuthService(repos.User, tokens, passwords, &cfg.Auth, log),
		Recipe:   newRecipeService(repos.Recipe, repos.Favorite, log),
		Comment:  newCommentService(repos.Comment, repos.Recipe, log),
		Favorite: newFavoriteService(repos.Favorite, repos.Recipe, log),
	}
}
