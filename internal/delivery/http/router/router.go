// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"profilehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Login verifies credentials and returns the stored profile.
	e.POST("/login", r.profileHandler.Login)

	profileGroup := e.Group("/profiles")
	{
		profileGroup.GET("", r.profileHandler.List)
		profileGroup.POST("", r.profileHandler.Add)
		// The whole-object update addresses the profile by the username in
		// its body, so it hangs off the collection rather than /:id.
		profileGroup.PUT("", r.profileHandler.Update)
		profileGroup.GET("/:id", r.profileHandler.GetByID)
		profileGroup.PATCH("/:id", r.profileHandler.Patch)
		profileGroup.DELETE("/:id", r.profileHandler.DeleteByID)
	}
}
