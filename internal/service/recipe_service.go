package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/hasanackl/YemekTarifiSitesi/internal/auth"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/hasanackl/YemekTarifiSitesi/internal/policy"
	"github.com/hasanackl/YemekTarifiSitesi/internal/repository"
	"github.com/hasanackl/YemekTarifiSitesi/internal/validation"
	"github.com/rs/zerolog"
)

// Pagination defaults and bounds. Out-of-range values are clamped, not
// rejected.
const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// recipeService implements RecipeService
type recipeService struct {
	recipes   repository.RecipeRepository
	favorites repository.FavoriteRepository
	log       zerolog.Logger
}

func newRecipeService(recipes repository.RecipeRepository, favorites repository.FavoriteRepository, log zerolog.Logger) RecipeService {
	return &recipeService{
		recipes:   recipes,
		favorites: favorites,
		log:       log.With().Str("service", "recipe").Logger(),
	}
}

// List returns all recipes annotated for the requesting identity
func (s *recipeService) List(ctx context.Context, identity *auth.Identity) ([]models.RecipeResponse, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return s.annotate(ctx, identity, recipes)
}

// Get returns a single recipe annotated for the requesting identity
func (s *recipeService) Get(ctx context.Context, identity *auth.Identity, id string) (*models.RecipeResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, ErrNotFound
	}

	isFav := false
	if identity != nil {
		isFav, err = s.favorites.Exists(ctx, identity.UserID, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check favorite: %w", err)
		}
	}

	resp := toRecipeResponse(recipe, isFav)
	return &resp, nil
}

// ListByCategory returns recipes in a category, matched case-insensitively
func (s *recipeService) ListByCategory(ctx context.Context, identity *auth.Identity, category string) ([]models.RecipeResponse, error) {
	recipes, err := s.recipes.ListByCategory(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes by category: %w", err)
	}
	return s.annotate(ctx, identity, recipes)
}

// Search produces a deterministic, paginated, sorted subset of recipes
// matching the optional filters, annotated per-item with whether the
// requesting identity has favorited it.
func (s *recipeService) Search(ctx context.Context, identity *auth.Identity, params models.SearchParams) (*models.PagedResult, error) {
	params = normalizeSearchParams(params)

	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	filtered := filterRecipes(recipes, params.Query, params.Category)

	totalCount := len(filtered)
	pageCount := totalPages(totalCount, params.PageSize)

	sortRecipes(filtered, params.SortBy, params.SortDir)

	page := paginate(filtered, params.Page, params.PageSize)

	favSet, err := s.favoriteIDSet(ctx, identity)
	if err != nil {
		return nil, err
	}

	items := make([]models.RecipeResponse, 0, len(page))
	for _, r := range page {
		items = append(items, toRecipeResponse(r, favSet[r.ID]))
	}

	return &models.PagedResult{
		Items:       items,
		Page:        params.Page,
		PageSize:    params.PageSize,
		TotalCount:  totalCount,
		TotalPages:  pageCount,
		HasNext:     params.Page < pageCount,
		HasPrevious: params.Page > 1,
	}, nil
}

// Create adds a recipe to the catalog. Admin only.
func (s *recipeService) Create(ctx context.Context, identity *auth.Identity, req *models.RecipeRequest) (*models.Recipe, error) {
	if err := policy.Authorize(identity, policy.OpRecipeCreate, ""); err != nil {
		return nil, err
	}
	if err := newValidationErrors(validation.ValidateRecipe(req)); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Description:     req.Description,
		Ingredients:     req.Ingredients,
		Steps:           req.Steps,
		Category:        req.Category,
		PreparationTime: req.PreparationTime,
		ImageURL:        req.ImageURL,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	s.log.Info().Str("recipe_id", recipe.ID).Str("name", recipe.Name).Msg("Recipe created")
	return recipe, nil
}

// Update replaces all mutable fields of a recipe. Admin only.
func (s *recipeService) Update(ctx context.Context, identity *auth.Identity, id string, req *models.RecipeRequest) error {
	if err := policy.Authorize(identity, policy.OpRecipeUpdate, ""); err != nil {
		return err
	}
	if err := newValidationErrors(validation.ValidateRecipe(req)); err != nil {
		return err
	}

	recipe := &models.Recipe{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		Ingredients:     req.Ingredients,
		Steps:           req.Steps,
		Category:        req.Category,
		PreparationTime: req.PreparationTime,
		ImageURL:        req.ImageURL,
	}
	found, err := s.recipes.Update(ctx, recipe)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	if !found {
		return ErrNotFound
	}

	s.log.Info().Str("recipe_id", id).Msg("Recipe updated")
	return nil
}

// Delete removes a recipe from the catalog. Admin only.
func (s *recipeService) Delete(ctx context.Context, identity *auth.Identity, id string) error {
	if err := policy.Authorize(identity, policy.OpRecipeDelete, ""); err != nil {
		return err
	}

	found, err := s.recipes.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if !found {
		return ErrNotFound
	}

	s.log.Info().Str("recipe_id", id).Msg("Recipe deleted")
	return nil
}

// normalizeSearchParams applies defaults and clamps out-of-range values
// before any pagination math
func normalizeSearchParams(p models.SearchParams) models.SearchParams {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	if p.SortBy == "" {
		p.SortBy = "name"
	}
	return p
}

// filterRecipes applies the free-text and category filters. The free-text
// match is a case-respecting substring over name, description, and
// ingredients; the category match is trim+lowercase equality.
func filterRecipes(recipes []*models.Recipe, query, category string) []*models.Recipe {
	term := strings.TrimSpace(query)
	cat := strings.ToLower(strings.TrimSpace(category))

	filtered := make([]*models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if term != "" &&
			!strings.Contains(r.Name, term) &&
			!strings.Contains(r.Description, term) &&
			!strings.Contains(r.Ingredients, term) {
			continue
		}
		if cat != "" && strings.ToLower(r.Category) != cat {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// sortRecipes orders recipes by the chosen key. Ties keep their original
// relative order.
func sortRecipes(recipes []*models.Recipe, sortBy, sortDir string) {
	desc := strings.EqualFold(sortDir, "desc")

	var less func(a, b *models.Recipe) bool
	switch strings.ToLower(sortBy) {
	case "time":
		less = func(a, b *models.Recipe) bool { return a.PreparationTime < b.PreparationTime }
	default:
		less = func(a, b *models.Recipe) bool { return a.Name < b.Name }
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		if desc {
			return less(recipes[j], recipes[i])
		}
		return less(recipes[i], recipes[j])
	})
}

// totalPages returns the number of pages needed to hold count items
func totalPages(count, pageSize int) int {
	pages := count / pageSize
	if count%pageSize != 0 {
		pages++
	}
	return pages
}

// paginate applies the page offset and takes at most pageSize items. Pages
// past the last one are empty; the bound is checked before the offset
// multiply so arbitrarily large page numbers cannot overflow it.
func paginate(recipes []*models.Recipe, page, pageSize int) []*models.Recipe {
	if page > totalPages(len(recipes), pageSize) {
		return nil
	}
	offset := (page - 1) * pageSize
	end := offset + pageSize
	if end > len(recipes) {
		end = len(recipes)
	}
	return recipes[offset:end]
}

// favoriteIDSet returns the set of recipe ids the identity has favorited.
// Anonymous callers get an empty set.
func (s *recipeService) favoriteIDSet(ctx context.Context, identity *auth.Identity) (map[string]bool, error) {
	set := map[string]bool{}
	if identity == nil {
		return set, nil
	}
	ids, err := s.favorites.ListRecipeIDs(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (s *recipeService) annotate(ctx context.Context, identity *auth.Identity, recipes []*models.Recipe) ([]models.RecipeResponse, error) {
	favSet, err := s.favoriteIDSet(ctx, identity)
	if err != nil {
		return nil, err
	}
	responses := make([]models.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		responses = append(responses, toRecipeResponse(r, favSet[r.ID]))
	}
	return responses, nil
}

func toRecipeResponse(r *models.Recipe, isFavorite bool) models.RecipeResponse {
	return models.RecipeResponse{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Ingredients:     r.Ingredients,
		Steps:           r.Steps,
		Category:        r.Category,
		PreparationTime: r.PreparationTime,
		ImageURL:        r.ImageURL,
		IsFavorite:      isFavorite,
	}
}
