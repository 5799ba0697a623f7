package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hasanackl/YemekTarifiSitesi/internal/auth"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/hasanackl/YemekTarifiSitesi/internal/policy"
	"github.com/hasanackl/YemekTarifiSitesi/internal/repository"
	"github.com/rs/zerolog"
)

// favoriteService implements FavoriteService. All operations act on the
// caller's own favorite set; no parameter selects another user's set.
type favoriteService struct {
	favorites repository.FavoriteRepository
	recipes   repository.RecipeRepository
	log       zerolog.Logger
}

func newFavoriteService(favorites repository.FavoriteRepository, recipes repository.RecipeRepository, log zerolog.Logger) FavoriteService {
	return &favoriteService{
		favorites: favorites,
		recipes:   recipes,
		log:       log.With().Str("service", "favorite").Logger(),
	}
}

// Add marks a recipe as a favorite of the authenticated identity.
// A duplicate pair is rejected, not silently ignored.
func (s *favoriteService) Add(ctx context.Context, identity *auth.Identity, recipeID string) error {
	if err := policy.Authorize(identity, policy.OpFavoriteAdd, ""); err != nil {
		return err
	}

	exists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("failed to check recipe: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	already, err := s.favorites.Exists(ctx, identity.UserID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to check favorite: %w", err)
	}
	if already {
		return ErrDuplicateFavorite
	}

	fav := &models.FavoriteMark{
		UserID:    identity.UserID,
		RecipeID:  recipeID,
		CreatedAt: time.Now().UTC(),
	}
	// The unique index backstops the race between the check and the insert
	if err := s.favorites.Create(ctx, fav); err != nil {
		return err
	}

	s.log.Info().Str("recipe_id", recipeID).Str("user_id", identity.UserID).Msg("Favorite added")
	return nil
}

// List returns the recipe ids favorited by the authenticated identity
func (s *favoriteService) List(ctx context.Context, identity *auth.Identity) ([]string, error) {
	if err := policy.Authorize(identity, policy.OpFavoriteList, ""); err != nil {
		return nil, err
	}

	ids, err := s.favorites.ListRecipeIDs(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return ids, nil
}

// Remove deletes a favorite mark of the authenticated identity
func (s *favoriteService) Remove(ctx context.Context, identity *auth.Identity, recipeID string) error {
	if err := policy.Authorize(identity, policy.OpFavoriteRemove, ""); err != nil {
		return err
	}

	found, err := s.favorites.Delete(ctx, identity.UserID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if !found {
		return ErrNotFound
	}

	s.log.Info().Str("recipe_id", recipeID).Str("user_id", identity.UserID).Msg("Favorite removed")
	return nil
}
