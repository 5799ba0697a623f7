package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hasanackl/YemekTarifiSitesi/internal/auth"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/hasanackl/YemekTarifiSitesi/internal/policy"
	"github.com/hasanackl/YemekTarifiSitesi/internal/repository"
	"github.com/hasanackl/YemekTarifiSitesi/internal/validation"
	"github.com/rs/zerolog"
)

// commentService implements CommentService
type commentService struct {
	comments repository.CommentRepository
	recipes  repository.RecipeRepository
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, recipes repository.RecipeRepository, log zerolog.Logger) CommentService {
	return &commentService{
		comments: comments,
		recipes:  recipes,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// Add creates a comment on a recipe for the authenticated identity
func (s *commentService) Add(ctx context.Context, identity *auth.Identity, req *models.CommentRequest) (*models.Comment, error) {
	if err := policy.Authorize(identity, policy.OpCommentCreate, ""); err != nil {
		return nil, err
	}
	if err := newValidationErrors(validation.ValidateComment(req)); err != nil {
		return nil, err
	}

	exists, err := s.recipes.Exists(ctx, req.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		UserID:    identity.UserID,
		RecipeID:  req.RecipeID,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.log.Info().Str("comment_id", comment.ID).Str("recipe_id", comment.RecipeID).Msg("Comment added")
	return comment, nil
}

// ListByRecipe returns a recipe's comments newest first. The recipe must
// exist.
func (s *commentService) ListByRecipe(ctx context.Context, recipeID string) ([]*models.CommentResponse, error) {
	exists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	comments, err := s.comments.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment. The owner and admins may delete; existence is
// checked before ownership so a missing comment is 404 for everyone.
func (s *commentService) Delete(ctx context.Context, identity *auth.Identity, id string) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return ErrNotFound
	}

	if err := policy.Authorize(identity, policy.OpCommentDelete, comment.UserID); err != nil {
		return err
	}

	found, err := s.comments.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if !found {
		// Lost a race with a concurrent delete
		return ErrNotFound
	}

	s.log.Info().Str("comment_id", id).Msg("Comment deleted")
	return nil
}
