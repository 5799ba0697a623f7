package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hasanackl/YemekTarifiSitesi/internal/auth"
	"github.com/hasanackl/YemekTarifiSitesi/internal/config"
	"github.com/hasanackl/YemekTarifiSitesi/internal/service"
	"github.com/rs/zerolog"
)

// identityKey is the gin context key holding the caller's *auth.Identity
const identityKey = "identity"

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	tokens := auth.NewTokenIssuer(&cfg.Auth)

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(identityMiddleware(tokens))

	// Handlers
	authHandler := NewAuthHandler(services, log)
	recipeHandler := NewRecipeHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	favoriteHandler := NewFavoriteHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	api := router.Group("/api")
	{
		api.GET("/ping", ping)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/reset-password", authHandler.ResetPassword)
		}

		recipes := api.Group("/recipes")
		{
			recipes.GET("", recipeHandler.List)
			recipes.GET("/search", recipeHandler.Search)
			recipes.GET("/category/:category", recipeHandler.ListByCategory)
			recipes.GET("/:id", recipeHandler.Get)
			recipes.GET("/:id/comments", recipeHandler.ListComments)
			recipes.POST("", recipeHandler.Create)
			recipes.PUT("/:id", recipeHandler.Update)
			recipes.DELETE("/:id", recipeHandler.Delete)

			recipes.POST("/comment", commentHandler.Add)
			recipes.DELETE("/comment/:id", commentHandler.Delete)
		}

		comments := api.Group("/comments")
		{
			comments.POST("", commentHandler.Add)
			comments.GET("/:recipeId", commentHandler.ListByRecipe)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		favorites := api.Group("/favorites")
		{
			favorites.GET("", favoriteHandler.List)
			favorites.POST("", favoriteHandler.Add)
			favorites.DELETE("/:recipeId", favoriteHandler.Remove)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "recipe-api",
	})
}

// ping is a public liveness endpoint
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// identityMiddleware resolves the caller's identity from the bearer token
// when one is presented. A missing or invalid token leaves the caller
// anonymous; authenticated-only operations fail later in the policy.
func identityMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if identity, err := tokens.Verify(parts[1]); err == nil {
					c.Set(identityKey, identity)
				}
			}
		}
		c.Next()
	}
}

// identityFrom returns the caller's identity, or nil for anonymous callers
func identityFrom(c *gin.Context) *auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(*auth.Identity); ok {
			return identity
		}
	}
	return nil
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
