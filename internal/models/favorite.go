package models

import (
	"time"
)

// FavoriteMark is a user-scoped bookmark on a recipe.
// The (user_id, recipe_id) pair is unique.
type FavoriteMark struct {
	UserID    string    `json:"user_id" db:"user_id"`
	RecipeID  string    `json:"recipe_id" db:"recipe_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FavoriteRequest is the favorite creation payload
type FavoriteRequest struct {
	RecipeID string `json:"recipeId" binding:"required"`
}
