package repository

import (
	"context"
	"errors"

	"github.com/hasanackl/YemekTarifiSitesi/internal/database"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits
const uniqueViolation = "23505"

// favoriteRepo is the concrete implementation of FavoriteRepository
type favoriteRepo struct {
	db *database.DB
}

// NewFavoriteRepo creates a new favorite repository
func NewFavoriteRepo(db *database.DB) FavoriteRepository {
	return &favoriteRepo{db: db}
}

// Create inserts a favorite mark. The (user_id, recipe_id) primary key
// turns a concurrent duplicate insert into ErrDuplicateFavorite.
func (r *favoriteRepo) Create(ctx context.Context, fav *models.FavoriteMark) error {
	query := `
		INSERT INTO favorites (user_id, recipe_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, fav.UserID, fav.RecipeID, fav.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateFavorite
	}
	return err
}

// Delete removes a favorite mark. Returns false when the mark does not exist.
func (r *favoriteRepo) Delete(ctx context.Context, userID, recipeID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2", userID, recipeID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

// Exists checks if the user has already favorited the recipe
func (r *favoriteRepo) Exists(ctx context.Context, userID, recipeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND recipe_id = $2)",
		userID, recipeID).Scan(&exists)
	return exists, err
}

// ListRecipeIDs retrieves the recipe ids favorited by a user
func (r *favoriteRepo) ListRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT recipe_id FROM favorites WHERE user_id = $1 ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
