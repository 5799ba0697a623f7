package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MinPasswordLen is the minimum accepted password length
const MinPasswordLen = 8

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateRegister validates a registration request
func ValidateRegister(req *models.RegisterRequest) []ValidationError {
	var errors []ValidationError

	username := strings.TrimSpace(req.Username)
	if username == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	} else if utf8.RuneCountInString(username) > 50 {
		errors = append(errors, ValidationError{Field: "username", Message: "username must be at most 50 characters", Value: req.Username})
	}

	if req.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(req.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: req.Email})
	}

	errors = append(errors, validatePassword(req.Password)...)

	return errors
}

// ValidatePassword validates a standalone password (reset flow)
func ValidatePassword(password string) []ValidationError {
	return validatePassword(password)
}

func validatePassword(password string) []ValidationError {
	var errors []ValidationError
	if password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	} else if utf8.RuneCountInString(password) < MinPasswordLen {
		errors = append(errors, ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLen)})
	}
	return errors
}

// ValidateRecipe validates recipe create/update input
func ValidateRecipe(req *models.RecipeRequest) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	} else if utf8.RuneCountInString(req.Name) > models.MaxRecipeNameLen {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("name must be at most %d characters", models.MaxRecipeNameLen),
		})
	}

	if strings.TrimSpace(req.Description) == "" {
		errors = append(errors, ValidationError{Field: "description", Message: "description is required"})
	} else if utf8.RuneCountInString(req.Description) > models.MaxRecipeDescriptionLen {
		errors = append(errors, ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("description must be at most %d characters", models.MaxRecipeDescriptionLen),
		})
	}

	if strings.TrimSpace(req.Ingredients) == "" {
		errors = append(errors, ValidationError{Field: "ingredients", Message: "ingredients is required"})
	}

	if strings.TrimSpace(req.Steps) == "" {
		errors = append(errors, ValidationError{Field: "steps", Message: "steps is required"})
	}

	if strings.TrimSpace(req.Category) == "" {
		errors = append(errors, ValidationError{Field: "category", Message: "category is required"})
	}

	if req.PreparationTime < models.MinPreparationTime || req.PreparationTime > models.MaxPreparationTime {
		errors = append(errors, ValidationError{
			Field:   "preparationTime",
			Message: fmt.Sprintf("preparation time must be between %d and %d minutes", models.MinPreparationTime, models.MaxPreparationTime),
			Value:   req.PreparationTime,
		})
	}

	if req.ImageURL != "" {
		if u, err := url.Parse(req.ImageURL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{Field: "imageUrl", Message: "invalid URL", Value: req.ImageURL})
		}
	}

	return errors
}

// ValidateComment validates comment creation input
func ValidateComment(req *models.CommentRequest) []ValidationError {
	var errors []ValidationError

	if req.RecipeID == "" {
		errors = append(errors, ValidationError{Field: "recipeId", Message: "recipeId is required"})
	}

	if strings.TrimSpace(req.Text) == "" {
		errors = append(errors, ValidationError{Field: "text", Message: "text is required"})
	} else if utf8.RuneCountInString(req.Text) > models.MaxCommentLen {
		errors = append(errors, ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("text must be at most %d characters", models.MaxCommentLen),
		})
	}

	return errors
}
