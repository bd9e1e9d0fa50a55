// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"companion/config"
	"companion/internal/delivery/api/middleware"
	"companion/internal/delivery/api/router/handler"
	"companion/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// WebhookPath is the unauthenticated Stripe endpoint.
const WebhookPath = "/webhooks/stripe"

type RouterParams struct {
	fx.In

	BookingHandler      *handler.BookingHandler
	PaymentHandler      *handler.PaymentHandler
	GamificationHandler *handler.GamificationHandler
	ProfileHandler      *handler.ProfileHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Registry            *prometheus.Registry
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	bookingHandler      *handler.BookingHandler
	paymentHandler      *handler.PaymentHandler
	gamificationHandler *handler.GamificationHandler
	profileHandler      *handler.ProfileHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	registry            *prometheus.Registry
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		bookingHandler:      params.BookingHandler,
		paymentHandler:      params.PaymentHandler,
		gamificationHandler: params.GamificationHandler,
		profileHandler:      params.ProfileHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
		registry:            params.Registry,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.registry)))
	}

	// Stripe authenticates with the signature header instead of a bearer token.
	e.POST(WebhookPath, r.paymentHandler.HandleStripeWebhook,
		echomiddleware.BodyLimit(r.config.Stripe.MaxWebhookBodySize))

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.POST("/onboarding", r.profileHandler.CompleteOnboarding)
	apiV1.GET("/pnj-profiles/:id", r.profileHandler.GetPNJProfile)

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.profileHandler.GetMe)
		meGroup.PUT("/pnj-profile", r.profileHandler.UpsertPNJProfile)
		meGroup.POST("/payout-account", r.paymentHandler.CreateConnectedAccount)
		meGroup.GET("/progress", r.gamificationHandler.GetProgress)
		meGroup.GET("/missions", r.gamificationHandler.GetMissions)
		meGroup.POST("/missions/:missionId/claim", r.gamificationHandler.ClaimMission)
	}

	bookingsGroup := apiV1.Group("/bookings")
	{
		bookingsGroup.POST("", r.bookingHandler.CreateBooking)
		bookingsGroup.GET("", r.bookingHandler.ListBookings)
		bookingsGroup.POST("/check-in/qr", r.bookingHandler.CheckInByQR)
		bookingsGroup.GET("/:id", r.bookingHandler.GetBooking)
		bookingsGroup.POST("/:id/accept", r.bookingHandler.AcceptBooking)
		bookingsGroup.POST("/:id/reject", r.bookingHandler.RejectBooking)
		bookingsGroup.POST("/:id/cancel", r.bookingHandler.CancelBooking)
		bookingsGroup.POST("/:id/payment", r.bookingHandler.StartPayment)
		bookingsGroup.GET("/:id/check-in/qr", r.bookingHandler.CheckInQR)
		bookingsGroup.POST("/:id/check-in", r.bookingHandler.CheckIn)
		bookingsGroup.POST("/:id/complete", r.bookingHandler.CompleteBooking)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkNotificationRead)
	}
}
