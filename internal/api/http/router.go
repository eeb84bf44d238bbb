package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/leasing-crm/internal/api/http/handlers"
	"github.com/spec-kit/leasing-crm/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	GuestCard      *handlers.GuestCardHandler
	FloatingAgents *handlers.FloatingAgentsHandler
	CalendarEvents *handlers.CalendarEventsHandler
	Agents         *handlers.AgentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/agents/register", cfg.Agents.Register)
	app.Post("/auth/agents/login", cfg.Agents.Login)

	// guests trade the program email for a self-service session up front;
	// the session token then gates the guest card endpoints
	app.Post("/guestCard/session", cfg.GuestCard.StartSession)

	guest := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	guest.Get("/guestCard/availableSlots", cfg.GuestCard.AvailableSlots)
	guest.Get("/marketing/appointment/availableSlots", cfg.GuestCard.AvailableSlots)
	guest.Post("/guestCard/appointment", cfg.GuestCard.BookAppointment)

	agents := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAgent())
	agents.Get("/floatingAgents/availability/:userId/:from/:to", cfg.FloatingAgents.Availability)
	agents.Post("/floatingAgents/availability", cfg.FloatingAgents.SetAvailability)
	agents.Post("/calendarEvents", cfg.CalendarEvents.Create)
	agents.Delete("/calendarEvents/:id", cfg.CalendarEvents.Delete)
}
