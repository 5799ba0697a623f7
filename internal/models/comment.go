package models

import (
	"time"
)

// MaxCommentLen is the maximum allowed comment length in characters
const MaxCommentLen = 500

// Comment represents a comment on a recipe
type Comment struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	RecipeID  string    `json:"recipe_id" db:"recipe_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CommentRequest is the comment creation payload
type CommentRequest struct {
	RecipeID string `json:"recipeId" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

// CommentResponse is a comment joined with its author's username
type CommentResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"userName"`
}
