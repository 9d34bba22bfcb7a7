// Package mockapi assembles the development API server that backs the
// terminal client. It serves the same envelope protocol and routes the
// production backend exposes.
package mockapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/di"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/middleware"
)

// NewRouter wires all HTTP routes onto a gin engine. Auth endpoints are
// public; everything else requires a valid, non-revoked token. Catalog
// writes are restricted to staff roles.
func NewRouter(c *di.Container) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)

	authed := middleware.RequireAuth(c.Tokens, c.SessionRepo)
	staff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleAgent)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", c.AuthHandler.Register)
			auth.POST("/login", c.AuthHandler.Login)
			auth.POST("/logout", authed, c.AuthHandler.Logout)
		}

		profile := v1.Group("/profile", authed)
		{
			profile.GET("", c.AuthHandler.GetProfile)
			profile.PUT("", c.AuthHandler.UpdateProfile)
		}

		destinations := v1.Group("/destinations", authed)
		{
			destinations.GET("", c.DestinationHandler.List)
			destinations.GET("/:id", c.DestinationHandler.Get)
			destinations.POST("", staff, c.DestinationHandler.Create)
			destinations.PUT("/:id", staff, c.DestinationHandler.Update)
			destinations.DELETE("/:id", adminOnly, c.DestinationHandler.Delete)
			destinations.POST("/bulk-delete", adminOnly, c.DestinationHandler.BulkDelete)
			destinations.PATCH("/:id/status", staff, c.DestinationHandler.SetStatus)
		}

		packages := v1.Group("/packages", authed)
		{
			packages.GET("", c.PackageHandler.List)
			packages.GET("/:id", c.PackageHandler.Get)
			packages.POST("", staff, c.PackageHandler.Create)
			packages.PUT("/:id", staff, c.PackageHandler.Update)
			packages.DELETE("/:id", adminOnly, c.PackageHandler.Delete)
			packages.POST("/bulk-delete", adminOnly, c.PackageHandler.BulkDelete)
			packages.PATCH("/:id/status", staff, c.PackageHandler.SetStatus)
		}

		tickets := v1.Group("/flight-tickets", authed)
		{
			tickets.GET("", c.TicketHandler.List)
			tickets.GET("/:id", c.TicketHandler.Get)
			tickets.POST("", staff, c.TicketHandler.Create)
			tickets.PUT("/:id", staff, c.TicketHandler.Update)
			tickets.DELETE("/:id", staff, c.TicketHandler.Delete)
			tickets.POST("/bulk-delete", staff, c.TicketHandler.BulkDelete)
			tickets.PATCH("/:id/pay", staff, c.TicketHandler.MarkPaid)
			tickets.PATCH("/:id/cancel", staff, c.TicketHandler.Cancel)
		}

		bookings := v1.Group("/bookings", authed)
		{
			bookings.GET("", c.BookingHandler.List)
			bookings.GET("/:id", c.BookingHandler.Get)
			bookings.POST("", c.BookingHandler.Create)
			bookings.DELETE("/:id", staff, c.BookingHandler.Delete)
			bookings.POST("/bulk-delete", staff, c.BookingHandler.BulkDelete)
			bookings.PATCH("/:id/confirm", staff, c.BookingHandler.Confirm)
			bookings.PATCH("/:id/cancel", c.BookingHandler.Cancel)
		}

		consultations := v1.Group("/consultations", authed)
		{
			consultations.GET("", c.ConsultationHandler.List)
			consultations.GET("/:id", c.ConsultationHandler.Get)
			consultations.POST("", c.ConsultationHandler.Create)
			consultations.DELETE("/:id", staff, c.ConsultationHandler.Delete)
			consultations.POST("/bulk-delete", staff, c.ConsultationHandler.BulkDelete)
			consultations.PATCH("/:id/close", staff, c.ConsultationHandler.Close)
		}
	}

	return router
}
