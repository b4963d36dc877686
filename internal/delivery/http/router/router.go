// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cartbridge/internal/delivery/http/middleware"
	"cartbridge/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler      *handler.CartHandler
	ClientMiddleware *middleware.ClientMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler      *handler.CartHandler
	clientMiddleware *middleware.ClientMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:      params.CartHandler,
		clientMiddleware: params.ClientMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	api.Use(r.clientMiddleware.RequestID)
	api.Use(r.clientMiddleware.Identify) // Every cart route needs a client identity

	// Cart routes
	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:index", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:index", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/refresh", r.cartHandler.RefreshCart)
	}

	// Session routes driven by the auth component's login/logout signals
	sessionGroup := api.Group("/session")
	{
		sessionGroup.POST("/login", r.cartHandler.Login)
		sessionGroup.POST("/logout", r.cartHandler.Logout)
	}
}
