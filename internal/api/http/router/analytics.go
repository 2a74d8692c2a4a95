package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

func (r *Router) registerAnalyticsRoutes(api fiber.Router, h *handler.AnalyticsHandler, authRequired, patientCtx fiber.Handler) {
	group := api.Group("/analytics", authRequired, patientCtx)
	group.Get("/summary", h.Summary)
	group.Get("/counts", h.Counts)
	group.Post("/import", h.Import)
}
