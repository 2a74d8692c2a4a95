package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

func (r *Router) registerEventRoutes(api fiber.Router, h *handler.EventsHandler, authRequired fiber.Handler) {
	api.Get("/events", authRequired, h.Stream)
}
