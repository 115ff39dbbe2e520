// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"isoko/internal/delivery/http/router/handler"
	"isoko/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminHandler        *handler.AdminHandler
	StoreHandler        *handler.StoreHandler
	AffiliateHandler    *handler.AffiliateHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	adminHandler        *handler.AdminHandler
	storeHandler        *handler.StoreHandler
	affiliateHandler    *handler.AffiliateHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adminHandler:        params.AdminHandler,
		storeHandler:        params.StoreHandler,
		affiliateHandler:    params.AffiliateHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Admin portal dispatch endpoint. The shared secret travels in the
	// request body, so a single POST route covers every action.
	e.POST("/admin", r.adminHandler.Dispatch)

	// Public storefront routes
	storeGroup := e.Group("/stores")
	{
		storeGroup.GET("", r.storeHandler.ListStores)
		storeGroup.GET("/:id", r.storeHandler.GetStore)
		storeGroup.POST("/:id/follow", r.storeHandler.FollowStore)
		storeGroup.GET("/:id/chat", r.storeHandler.ListChat)
		storeGroup.POST("/:id/chat", r.storeHandler.SendChat)
	}

	// Affiliate self-service routes
	affiliateGroup := e.Group("/affiliates")
	{
		affiliateGroup.POST("", r.affiliateHandler.Register)
		affiliateGroup.GET("/:id", r.affiliateHandler.GetProfile)
		affiliateGroup.GET("/:id/qr", r.affiliateHandler.PromoQR)
	}
}
