package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hasanackl/YemekTarifiSitesi/internal/database"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
)

const recipeColumns = `id, name, description, ingredients, steps, category, preparation_time, COALESCE(image_url, ''), created_at, updated_at`

// recipeRepo is the concrete implementation of RecipeRepository
type recipeRepo struct {
	db *database.DB
}

// NewRecipeRepo creates a new recipe repository
func NewRecipeRepo(db *database.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

// Create inserts a new recipe
func (r *recipeRepo) Create(ctx context.Context, recipe *models.Recipe) error {
	query := `
		INSERT INTO recipes (id, name, description, ingredients, steps, category, preparation_time, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Ingredients,
		recipe.Steps, recipe.Category, recipe.PreparationTime, recipe.ImageURL,
		now, now,
	)
	return err
}

// Update replaces all mutable fields of a recipe. Returns false when the
// recipe does not exist.
func (r *recipeRepo) Update(ctx context.Context, recipe *models.Recipe) (bool, error) {
	query := `
		UPDATE recipes
		SET name = $2, description = $3, ingredients = $4, steps = $5,
		    category = $6, preparation_time = $7, image_url = NULLIF($8, ''), updated_at = $9
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Ingredients,
		recipe.Steps, recipe.Category, recipe.PreparationTime, recipe.ImageURL,
		time.Now(),
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

// Delete removes a recipe. Returns false when the recipe does not exist.
func (r *recipeRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

// GetByID retrieves a recipe by ID
func (r *recipeRepo) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`

	var recipe models.Recipe
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&recipe.ID, &recipe.Name, &recipe.Description, &recipe.Ingredients,
		&recipe.Steps, &recipe.Category, &recipe.PreparationTime, &recipe.ImageURL,
		&recipe.CreatedAt, &recipe.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Exists checks if a recipe with the given ID exists
func (r *recipeRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM recipes WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// List retrieves all recipes in insertion order
func (r *recipeRepo) List(ctx context.Context) ([]*models.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes ORDER BY created_at, id`
	return r.queryMany(ctx, query)
}

// ListByCategory retrieves recipes whose category matches case-insensitively
func (r *recipeRepo) ListByCategory(ctx context.Context, category string) ([]*models.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE lower(category) = lower($1) ORDER BY created_at, id`
	return r.queryMany(ctx, query, category)
}

func (r *recipeRepo) queryMany(ctx context.Context, query string, args ...interface{}) ([]*models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*models.Recipe
	for rows.Next() {
		var recipe models.Recipe
		err := rows.Scan(
			&recipe.ID, &recipe.Name, &recipe.Description, &recipe.Ingredients,
			&recipe.Steps, &recipe.Category, &recipe.PreparationTime, &recipe.ImageURL,
			&recipe.CreatedAt, &recipe.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, &recipe)
	}
	return recipes, rows.Err()
}
