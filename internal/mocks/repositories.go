package mocks

import (
	"context"
	"strings"

	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/hasanackl/YemekTarifiSitesi/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	ByUsername  map[string]*models.User
	CreateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:      make(map[string]*models.User),
		ByUsername: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Users[user.ID] = user
	m.ByUsername[user.Username] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.ByUsername[username], nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, exists := m.ByUsername[username]
	return exists, nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range m.Users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if u, ok := m.Users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

// MockRecipeRepository is a mock implementation of RecipeRepository.
// Recipes keep their insertion order, as the real List does.
type MockRecipeRepository struct {
	Recipes []*models.Recipe
}

func NewMockRecipeRepository() *MockRecipeRepository {
	return &MockRecipeRepository{}
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	m.Recipes = append(m.Recipes, recipe)
	return nil
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *models.Recipe) (bool, error) {
	for i, r := range m.Recipes {
		if r.ID == recipe.ID {
			m.Recipes[i] = recipe
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id string) (bool, error) {
	for i, r := range m.Recipes {
		if r.ID == id {
			m.Recipes = append(m.Recipes[:i], m.Recipes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	for _, r := range m.Recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *MockRecipeRepository) Exists(ctx context.Context, id string) (bool, error) {
	r, _ := m.GetByID(ctx, id)
	return r != nil, nil
}

func (m *MockRecipeRepository) List(ctx context.Context) ([]*models.Recipe, error) {
	out := make([]*models.Recipe, len(m.Recipes))
	copy(out, m.Recipes)
	return out, nil
}

func (m *MockRecipeRepository) ListByCategory(ctx context.Context, category string) ([]*models.Recipe, error) {
	var out []*models.Recipe
	for _, r := range m.Recipes {
		if strings.EqualFold(r.Category, category) {
			out = append(out, r)
		}
	}
	return out, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments  map[string]*models.Comment
	Usernames map[string]string // user id -> username for ListByRecipe joins
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments:  make(map[string]*models.Comment),
		Usernames: make(map[string]string),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return m.Comments[id], nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

func (m *MockCommentRepository) ListByRecipe(ctx context.Context, recipeID string) ([]*models.CommentResponse, error) {
	out := []*models.CommentResponse{}
	for _, c := range m.Comments {
		if c.RecipeID != recipeID {
			continue
		}
		out = append(out, &models.CommentResponse{
			ID:        c.ID,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			Username:  m.Usernames[c.UserID],
		})
	}
	// Newest first, as the real query orders
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

// MockFavoriteRepository is a mock implementation of FavoriteRepository
type MockFavoriteRepository struct {
	Marks []*models.FavoriteMark
}

func NewMockFavoriteRepository() *MockFavoriteRepository {
	return &MockFavoriteRepository{}
}

func (m *MockFavoriteRepository) Create(ctx context.Context, fav *models.FavoriteMark) error {
	for _, f := range m.Marks {
		if f.UserID == fav.UserID && f.RecipeID == fav.RecipeID {
			return repository.ErrDuplicateFavorite
		}
	}
	m.Marks = append(m.Marks, fav)
	return nil
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, recipeID string) (bool, error) {
	for i, f := range m.Marks {
		if f.UserID == userID && f.RecipeID == recipeID {
			m.Marks = append(m.Marks[:i], m.Marks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, recipeID string) (bool, error) {
	for _, f := range m.Marks {
		if f.UserID == userID && f.RecipeID == recipeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockFavoriteRepository) ListRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	for _, f := range m.Marks {
		if f.UserID == userID {
			ids = append(ids, f.RecipeID)
		}
	}
	return ids, nil
}
