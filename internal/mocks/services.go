package mocks

import (
	"context"

	"github.com/hasanackl/YemekTarifiSitesi/internal/auth"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (string, error)
	ResetFunc    func(ctx context.Context, req *models.ResetPasswordRequest) error
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return &models.User{Username: req.Username}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return "mock-token", nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context) error {
	return nil
}

// MockRecipeService is a mock implementation of service.RecipeService
type MockRecipeService struct {
	ListFunc   func(ctx context.Context, identity *auth.Identity) ([]models.RecipeResponse, error)
	GetFunc    func(ctx context.Context, identity *auth.Identity, id string) (*models.RecipeResponse, error)
	SearchFunc func(ctx context.Context, identity *auth.Identity, params models.SearchParams) (*models.PagedResult, error)
	CreateFunc func(ctx context.Context, identity *auth.Identity, req *models.RecipeRequest) (*models.Recipe, error)
	UpdateFunc func(ctx context.Context, identity *auth.Identity, id string, req *models.RecipeRequest) error
	DeleteFunc func(ctx context.Context, identity *auth.Identity, id string) error

	// LastIdentity records the identity the handler threaded through
	LastIdentity *auth.Identity
}

func NewMockRecipeService() *MockRecipeService {
	return &MockRecipeService{}
}

func (m *MockRecipeService) List(ctx context.Context, identity *auth.Identity) ([]models.RecipeResponse, error) {
	m.LastIdentity = identity
	if m.ListFunc != nil {
		return m.ListFunc(ctx, identity)
	}
	return []models.RecipeResponse{}, nil
}

func (m *MockRecipeService) Get(ctx context.Context, identity *auth.Identity, id string) (*models.RecipeResponse, error) {
	m.LastIdentity = identity
	if m.GetFunc != nil {
		return m.GetFunc(ctx, identity, id)
	}
	return &models.RecipeResponse{ID: id}, nil
}

func (m *MockRecipeService) ListByCategory(ctx context.Context, identity *auth.Identity, category string) ([]models.RecipeResponse, error) {
	m.LastIdentity = identity
	return []models.RecipeResponse{}, nil
}

func (m *MockRecipeService) Search(ctx context.Context, identity *auth.Identity, params models.SearchParams) (*models.PagedResult, error) {
	m.LastIdentity = identity
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, identity, params)
	}
	return &models.PagedResult{Items: []models.RecipeResponse{}}, nil
}

func (m *MockRecipeService) Create(ctx context.Context, identity *auth.Identity, req *models.RecipeRequest) (*models.Recipe, error) {
	m.LastIdentity = identity
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, identity, req)
	}
	return &models.Recipe{Name: req.Name}, nil
}

func (m *MockRecipeService) Update(ctx context.Context, identity *auth.Identity, id string, req *models.RecipeRequest) error {
	m.LastIdentity = identity
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, identity, id, req)
	}
	return nil
}

func (m *MockRecipeService) Delete(ctx context.Context, identity *auth.Identity, id string) error {
	m.LastIdentity = identity
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, identity, id)
	}
	return nil
}

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	AddFunc    func(ctx context.Context, identity *auth.Identity, req *models.CommentRequest) (*models.Comment, error)
	ListFunc   func(ctx context.Context, recipeID string) ([]*models.CommentResponse, error)
	DeleteFunc func(ctx context.Context, identity *auth.Identity, id string) error
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{}
}

func (m *MockCommentService) Add(ctx context.Context, identity *auth.Identity, req *models.CommentRequest) (*models.Comment, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, identity, req)
	}
	return &models.Comment{RecipeID: req.RecipeID, Text: req.Text}, nil
}

func (m *MockCommentService) ListByRecipe(ctx context.Context, recipeID string) ([]*models.CommentResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, recipeID)
	}
	return []*models.CommentResponse{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, identity *auth.Identity, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, identity, id)
	}
	return nil
}

// MockFavoriteService is a mock implementation of service.FavoriteService
type MockFavoriteService struct {
	AddFunc    func(ctx context.Context, identity *auth.Identity, recipeID string) error
	ListFunc   func(ctx context.Context, identity *auth.Identity) ([]string, error)
	RemoveFunc func(ctx context.Context, identity *auth.Identity, recipeID string) error
}

func NewMockFavoriteService() *MockFavoriteService {
	return &MockFavoriteService{}
}

func (m *MockFavoriteService) Add(ctx context.Context, identity *auth.Identity, recipeID string) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, identity, recipeID)
	}
	return nil
}

func (m *MockFavoriteService) List(ctx context.Context, identity *auth.Identity) ([]string, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, identity)
	}
	return []string{}, nil
}

func (m *MockFavoriteService) Remove(ctx context.Context, identity *auth.Identity, recipeID string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, identity, recipeID)
	}
	return nil
}
