package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasanackl/YemekTarifiSitesi/internal/policy"
	"github.com/hasanackl/YemekTarifiSitesi/internal/service"
)

// respondError maps service and policy errors to HTTP statuses. An
// unauthenticated caller gets 401; an authenticated caller lacking
// privilege or ownership gets 403. The two are never conflated.
func respondError(c *gin.Context, err error) {
	var vErrs *service.ValidationErrors
	switch {
	case errors.As(err, &vErrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": vErrs.Errors})

	case errors.Is(err, policy.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, policy.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrDuplicateFavorite),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
