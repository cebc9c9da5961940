// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stationhub/internal/delivery/http/middleware"
	"stationhub/internal/delivery/http/router/handler"
	"stationhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	LocatorHandler *handler.LocatorHandler
	RegionHandler  *handler.RegionHandler
	PartnerHandler *handler.PartnerHandler
	ContentHandler *handler.ContentHandler
	MessageHandler *handler.MessageHandler
	StationHandler *handler.StationHandler
	UploadHandler  *handler.UploadHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public routes: the marketing site needs no session.
	{
		api.GET("/locate", p.LocatorHandler.Locate)
		api.GET("/stations/:id/qr", p.LocatorHandler.StationQR)
		api.GET("/regions", p.RegionHandler.ListPublic)
		api.GET("/partners", p.PartnerHandler.ListPublic)
		api.GET("/content/:section", p.ContentHandler.Get)
		api.POST("/contact", p.MessageHandler.Submit)
		// Contact-form attachments (CVs, complaint photos) upload before
		// the form is submitted, so this route takes no session. The
		// size and content-type caps still apply.
		api.POST("/uploads", p.UploadHandler.Upload)
	}

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", p.AuthHandler.SignIn)
		authGroup.POST("/logout", p.AuthHandler.SignOut)
		authGroup.POST("/refresh", p.AuthHandler.Refresh)
		authGroup.GET("/session", p.AuthHandler.Session)
	}

	// Dashboard routes: any signed-in editor or admin.
	adminGroup := api.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleEditor))
	{
		adminGroup.GET("/stations", p.StationHandler.List)
		adminGroup.GET("/stations/:id", p.StationHandler.Get)
		adminGroup.POST("/stations", p.StationHandler.Create)
		adminGroup.PUT("/stations/:id", p.StationHandler.Update)
		adminGroup.DELETE("/stations/:id", p.StationHandler.Delete)

		adminGroup.GET("/regions", p.RegionHandler.List)
		adminGroup.POST("/regions", p.RegionHandler.Create)
		adminGroup.PUT("/regions/:id", p.RegionHandler.Update)
		adminGroup.DELETE("/regions/:id", p.RegionHandler.Delete)

		adminGroup.GET("/partners", p.PartnerHandler.List)
		adminGroup.POST("/partners", p.PartnerHandler.Create)
		adminGroup.PUT("/partners/:id", p.PartnerHandler.Update)
		adminGroup.DELETE("/partners/:id", p.PartnerHandler.Delete)

		adminGroup.GET("/content", p.ContentHandler.List)
		adminGroup.PUT("/content", p.ContentHandler.Save)

		adminGroup.GET("/messages", p.MessageHandler.List)
		adminGroup.GET("/messages/:id", p.MessageHandler.Get)
		adminGroup.PUT("/messages/:id/archive", p.MessageHandler.SetArchived)
		adminGroup.DELETE("/messages/:id", p.MessageHandler.Delete)

		adminGroup.POST("/uploads", p.UploadHandler.Upload)
	}

	// Account management requires the admin role on top of a session.
	userGroup := adminGroup.Group("/users")
	userGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		userGroup.GET("", p.UserHandler.List)
		userGroup.POST("", p.UserHandler.Create)
		userGroup.PUT("/:id", p.UserHandler.Update)
		userGroup.PUT("/:id/ban", p.UserHandler.SetBanned)
		userGroup.PUT("/:id/password", p.UserHandler.ResetPassword)
		userGroup.DELETE("/:id", p.UserHandler.Delete)
	}
}
