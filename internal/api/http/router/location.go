package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

func (r *Router) registerLocationRoutes(api fiber.Router, h *handler.LocationHandler, authRequired, patientCtx fiber.Handler) {
	group := api.Group("/location", authRequired, patientCtx)
	group.Get("/latest", h.Latest)
	group.Get("/history", h.History)
}
