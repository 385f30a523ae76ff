// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shiptrack/internal/delivery/http/middleware"
	"shiptrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ShipmentHandler *handler.ShipmentHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	shipmentHandler *handler.ShipmentHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		shipmentHandler: params.ShipmentHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/signup", r.accountHandler.Signup)
		api.POST("/login", r.accountHandler.Login)

		// Shipments are global records; the endpoints are deliberately
		// unauthenticated and shipments carry no owning account.
		api.POST("/shipments", r.shipmentHandler.Create)
		api.GET("/shipments", r.shipmentHandler.List)

		// Authenticated area: exercises session token validation.
		api.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
	}
}
