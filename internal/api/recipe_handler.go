package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/hasanackl/YemekTarifiSitesi/internal/service"
	"github.com/rs/zerolog"
)

// RecipeHandler handles catalog endpoints
type RecipeHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(services *service.Services, log zerolog.Logger) *RecipeHandler {
	return &RecipeHandler{
		services: services,
		log:      log.With().Str("handler", "recipe").Logger(),
	}
}

// List handles GET /api/recipes
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.services.Recipe.List(c.Request.Context(), identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// Get handles GET /api/recipes/:id
func (h *RecipeHandler) Get(c *gin.Context) {
	recipe, err := h.services.Recipe.Get(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// ListComments handles GET /api/recipes/:id/comments
func (h *RecipeHandler) ListComments(c *gin.Context) {
	comments, err := h.services.Comment.ListByRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// ListByCategory handles GET /api/recipes/category/:category
func (h *RecipeHandler) ListByCategory(c *gin.Context) {
	recipes, err := h.services.Recipe.ListByCategory(c.Request.Context(), identityFrom(c), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// Search handles GET /api/recipes/search
func (h *RecipeHandler) Search(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search parameters"})
		return
	}

	result, err := h.services.Recipe.Search(c.Request.Context(), identityFrom(c), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Create handles POST /api/recipes (Admin)
func (h *RecipeHandler) Create(c *gin.Context) {
	var req models.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe payload"})
		return
	}

	recipe, err := h.services.Recipe.Create(c.Request.Context(), identityFrom(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/recipes/%s", recipe.ID))
	c.JSON(http.StatusCreated, recipe)
}

// Update handles PUT /api/recipes/:id (Admin)
func (h *RecipeHandler) Update(c *gin.Context) {
	var req models.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe payload"})
		return
	}

	if err := h.services.Recipe.Update(c.Request.Context(), identityFrom(c), c.Param("id"), &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/recipes/:id (Admin)
func (h *RecipeHandler) Delete(c *gin.Context) {
	if err := h.services.Recipe.Delete(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
