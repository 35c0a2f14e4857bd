// Package app provides the HTTP handlers for the popcorn-app service.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/TonyTawil/popcorn-app/internal/sdk/middleware"
)

// ----------------------------------------------------------------------------
// Route Registration
// ----------------------------------------------------------------------------

func (a *App) RegisterRoutes() *gin.Engine {
	router := gin.New()

	// Global middleware chain
	router.Use(gin.Recovery())      // Panic recovery
	router.Use(middleware.Logger()) // Custom slog logger
	router.Use(middleware.CORS())   // CORS support

	api := router.Group("/api")
	{
		// Health check routes (public)
		health := api.Group("/health")
		{
			health.GET("/readiness", a.HandleReadiness)
			health.GET("/liveness", a.HandleLiveness)
		}

		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", a.HandleSignup)
			auth.POST("/login", a.HandleLogin)
			auth.POST("/logout", a.HandleLogout)
			auth.GET("/verify-email", a.HandleVerifyEmail)
			auth.GET("/is-verified/:userId", a.HandleIsEmailVerified)
		}

		// Movie list routes (protected - requires a valid session cookie)
		users := api.Group("/users")
		users.Use(middleware.Authenticate(a.tokens))
		{
			users.GET("/watchlist", a.HandleGetWatchList)
			users.POST("/watchlist", a.HandleAddToWatchList)
			users.DELETE("/watchlist/:movieId", a.HandleRemoveFromWatchList)

			users.GET("/watched", a.HandleGetWatched)
			users.POST("/watched", a.HandleAddToWatched)
			users.DELETE("/watched/:movieId", a.HandleRemoveFromWatched)
			users.POST("/watched/move", a.HandleMoveToWatched)
		}
	}

	return router
}
