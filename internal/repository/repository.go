package repository

import (
	"context"
	"errors"

	"github.com/hasanackl/YemekTarifiSitesi/internal/database"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
)

// ErrDuplicateFavorite is returned when a (user, recipe) favorite pair
// already exists
var ErrDuplicateFavorite = errors.New("recipe already in favorites")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	Update(ctx context.Context, recipe *models.Recipe) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*models.Recipe, error)
	ListByCategory(ctx context.Context, category string) ([]*models.Recipe, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByRecipe(ctx context.Context, recipeID string) ([]*models.CommentResponse, error)
}

// FavoriteRepository defines the interface for favorite-mark operations
type FavoriteRepository interface {
	Create(ctx context.Context, fav *models.FavoriteMark) error
	Delete(ctx context.Context, userID, recipeID string) (bool, error)
	Exists(ctx context.Context, userID, recipeID string) (bool, error)
	ListRecipeIDs(ctx context.Context, userID string) ([]string, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User     UserRepository
	Recipe   RecipeRepository
	Comment  CommentRepository
	Favorite FavoriteRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepo(db),
		Recipe:   NewRecipeRepo(db),
		Comment:  NewCommentRepo(db),
		Favorite: NewFavoriteRepo(db),
	}
}
