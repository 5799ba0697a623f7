package repository

import (
	"context"
	"database/sql"

	"github.com/hasanackl/YemekTarifiSitesi/internal/database"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, user_id, recipe_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.UserID, comment.RecipeID, comment.Text, comment.CreatedAt,
	)
	return err
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `SELECT id, user_id, recipe_id, text, created_at FROM comments WHERE id = $1`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.UserID, &comment.RecipeID, &comment.Text, &comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment. Returns false when the comment does not exist.
func (r *commentRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

// ListByRecipe retrieves a recipe's comments newest first, joined with the
// commenter's username
func (r *commentRepo) ListByRecipe(ctx context.Context, recipeID string) ([]*models.CommentResponse, error) {
	query := `
		SELECT c.id, c.text, c.created_at, u.username
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.recipe_id = $1
		ORDER BY c.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*models.CommentResponse{}
	for rows.Next() {
		var c models.CommentResponse
		if err := rows.Scan(&c.ID, &c.Text, &c.CreatedAt, &c.Username); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}
