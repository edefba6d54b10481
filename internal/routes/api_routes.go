package routes

import (
	"cosmoport/shipyard/internal/api"
	"cosmoport/shipyard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the ship resource under /rest
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, limiter *middleware.IPRateLimiter) {
	r.Route("/rest/ships", func(ships chi.Router) {
		ships.Use(limiter.Middleware)

		ships.Get("/", handlers.ListShipsHandler())
		ships.Post("/", handlers.CreateShipHandler())
		ships.Get("/count", handlers.CountShipsHandler())

		ships.Get("/{id}", handlers.GetShipHandler())
		ships.Post("/{id}", handlers.UpdateShipHandler())
		ships.Delete("/{id}", handlers.DeleteShipHandler())
	})
}
