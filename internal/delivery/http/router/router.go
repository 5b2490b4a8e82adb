// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backlot/internal/delivery/http/middleware"
	"backlot/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DispatchHandler     *handler.DispatchHandler
	CallbackHandler     *handler.CallbackHandler
	NotificationHandler *handler.NotificationHandler
	PreferenceHandler   *handler.PreferenceHandler
	HistoryHandler      *handler.HistoryHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	dispatchHandler     *handler.DispatchHandler
	callbackHandler     *handler.CallbackHandler
	notificationHandler *handler.NotificationHandler
	preferenceHandler   *handler.PreferenceHandler
	historyHandler      *handler.HistoryHandler
	analyticsHandler    *handler.AnalyticsHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dispatchHandler:     params.DispatchHandler,
		callbackHandler:     params.CallbackHandler,
		notificationHandler: params.NotificationHandler,
		preferenceHandler:   params.PreferenceHandler,
		historyHandler:      params.HistoryHandler,
		analyticsHandler:    params.AnalyticsHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Provider status callbacks are authenticated by gateway signature at the
	// edge, not by user token.
	e.POST("/callbacks/:provider", r.callbackHandler.OnStatus)

	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Authenticate)

	// Event intake
	api.POST("/events", r.dispatchHandler.Notify)

	// Notification center
	api.GET("/users/:userID/notifications", r.notificationHandler.List)
	api.GET("/users/:userID/notifications/unread-count", r.notificationHandler.UnreadCount)
	api.GET("/users/:userID/history", r.historyHandler.Combined)
	api.POST("/notifications/read", r.notificationHandler.MarkReadBatch)
	api.POST("/notifications/:id/read", r.notificationHandler.MarkRead)
	api.POST("/notifications/:id/dismiss", r.notificationHandler.Dismiss)
	api.GET("/notifications/:id/attempts", r.notificationHandler.Attempts)

	// Preferences
	prefGroup := api.Group("/users/:userID/tenants/:tenantID/modules/:module/preferences")
	{
		prefGroup.GET("", r.preferenceHandler.Get)
		prefGroup.PUT("/events", r.preferenceHandler.UpdateEvent)
		prefGroup.PUT("/channels", r.preferenceHandler.UpdateChannels)
		prefGroup.PUT("/quiet-hours", r.preferenceHandler.UpdateQuietHours)
		prefGroup.PUT("/rate-limits", r.preferenceHandler.UpdateRateLimits)
	}

	// Analytics
	analyticsGroup := api.Group("/tenants/:tenantID/analytics")
	{
		analyticsGroup.GET("/deliveries", r.analyticsHandler.DeliveryStats)
		analyticsGroup.GET("/providers", r.analyticsHandler.ProviderPerformance)
		analyticsGroup.GET("/timeline", r.analyticsHandler.Timeline)
		analyticsGroup.GET("/users/:userID", r.analyticsHandler.UserSummary)
	}
}
