// Package router registers the API server routes.
package router

import (
	"cms/internal/delivery/api/middleware"
	"cms/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GraphQLPath is the GraphQL endpoint.
const GraphQLPath = "/api/graphql"

type RouterParams struct {
	fx.In

	GraphQLHandler    *handler.GraphQLHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	graphqlHandler    *handler.GraphQLHandler
	adminHandler      *handler.AdminHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		graphqlHandler:    params.GraphQLHandler,
		adminHandler:      params.AdminHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group(GraphQLPath, r.sessionMiddleware.Process)
	{
		api.GET("", r.graphqlHandler.Handle)
		api.POST("", r.graphqlHandler.Handle)
	}

	if !r.adminHandler.Enabled() {
		return
	}

	basePath := r.adminHandler.BasePath()
	admin := e.Group(basePath, r.sessionMiddleware.Process)
	{
		if basePath != "" {
			admin.GET("", r.adminHandler.Serve)
		}
		admin.GET("/*", r.adminHandler.Serve)
	}
}
