package models

import (
	"time"
)

// Field bounds enforced before persistence
const (
	MaxRecipeNameLen        = 100
	MaxRecipeDescriptionLen = 1000
	MinPreparationTime      = 1
	MaxPreparationTime      = 1440 // minutes
)

// Recipe represents a recipe in the catalog
type Recipe struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Ingredients     string    `json:"ingredients" db:"ingredients"`
	Steps           string    `json:"steps" db:"steps"`
	Category        string    `json:"category" db:"category"`
	PreparationTime int       `json:"preparationTime" db:"preparation_time"`
	ImageURL        string    `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// RecipeRequest carries the mutable recipe fields for create/update
type RecipeRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Ingredients     string `json:"ingredients" binding:"required"`
	Steps           string `json:"steps" binding:"required"`
	Category        string `json:"category" binding:"required"`
	PreparationTime int    `json:"preparationTime" binding:"required"`
	ImageURL        string `json:"imageUrl"`
}

// RecipeResponse is a recipe annotated for the requesting identity
type RecipeResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Ingredients     string `json:"ingredients"`
	Steps           string `json:"steps"`
	Category        string `json:"category"`
	PreparationTime int    `json:"preparationTime"`
	ImageURL        string `json:"imageUrl,omitempty"`
	IsFavorite      bool   `json:"isFavorite"`
}

// SearchParams are the recipe search inputs before normalization
type SearchParams struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	SortBy   string `form:"sortBy"`  // name | time
	SortDir  string `form:"sortDir"` // asc | desc
}

// PagedResult is a bounded slice of a larger ordered collection
type PagedResult struct {
	Items       []RecipeResponse `json:"items"`
	Page        int              `json:"page"`
	PageSize    int              `json:"pageSize"`
	TotalCount  int              `json:"totalCount"`
	TotalPages  int              `json:"totalPages"`
	HasNext     bool             `json:"hasNext"`
	HasPrevious bool             `json:"hasPrevious"`
}
