// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"usersvc/internal/delivery/http/middleware"
	"usersvc/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")
	v1.Use(r.requestIDMiddleware.Process)
	{
		v1.GET("/users", r.userHandler.List)
		v1.POST("/users", r.userHandler.Create)
		v1.GET("/users/:id", r.userHandler.GetByID)
		v1.PUT("/users", r.userHandler.UpdateByID)
		v1.DELETE("/users", r.userHandler.DeleteByID)
	}
}
