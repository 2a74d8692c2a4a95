package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

func (r *Router) registerAlertRoutes(api fiber.Router, h *handler.AlertHandler, authRequired, patientCtx fiber.Handler) {
	group := api.Group("/alerts", authRequired, patientCtx)
	group.Get("/", h.Timeline)
}
