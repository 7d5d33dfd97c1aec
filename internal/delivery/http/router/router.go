// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"

	"userauth/config"
	_ "userauth/docs" // registers the OpenAPI document with swag
	"userauth/internal/delivery/http/middleware"
	"userauth/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Protected routes list the auth gate explicitly so the pipeline is visible here.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Swagger UI over the generated OpenAPI document
	e.GET("/api-docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	})
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	// Character images referenced by the seeded image URLs
	e.Static("/images", r.cfg.HTTP.StaticDir)

	authenticate := r.authMiddleware.Authenticate

	users := e.Group("/users")
	{
		users.POST("/login", r.userHandler.Login)
		users.POST("", r.userHandler.Register)
		users.POST("/validateToken", r.userHandler.ValidateToken, authenticate)
		users.GET("/:id", r.userHandler.GetUser, authenticate)
		users.PATCH("/:id", r.userHandler.UpdateUser, authenticate)
		users.DELETE("/:id", r.userHandler.DeleteUser, authenticate)
	}
}
