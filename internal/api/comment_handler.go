package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/hasanackl/YemekTarifiSitesi/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// Add handles POST /api/comments and POST /api/recipes/comment
func (h *CommentHandler) Add(c *gin.Context) {
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipeId and text are required"})
		return
	}

	comment, err := h.services.Comment.Add(c.Request.Context(), identityFrom(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// ListByRecipe handles GET /api/comments/:recipeId
func (h *CommentHandler) ListByRecipe(c *gin.Context) {
	comments, err := h.services.Comment.ListByRecipe(c.Request.Context(), c.Param("recipeId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Delete handles DELETE /api/comments/:id and DELETE /api/recipes/comment/:id
// (comment owner or Admin)
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.services.Comment.Delete(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
