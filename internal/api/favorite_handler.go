package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/hasanackl/YemekTarifiSitesi/internal/service"
	"github.com/rs/zerolog"
)

// FavoriteHandler handles the caller's favorite set. Every route is
// self-scoped; there is no path that names another user.
type FavoriteHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(services *service.Services, log zerolog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		services: services,
		log:      log.With().Str("handler", "favorite").Logger(),
	}
}

// List handles GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	ids, err := h.services.Favorite.List(c.Request.Context(), identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// Add handles POST /api/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipeId is required"})
		return
	}

	if err := h.services.Favorite.Add(c.Request.Context(), identityFrom(c), req.RecipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to favorites"})
}

// Remove handles DELETE /api/favorites/:recipeId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	if err := h.services.Favorite.Remove(c.Request.Context(), identityFrom(c), c.Param("recipeId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
