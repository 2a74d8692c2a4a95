package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

func (r *Router) registerRecordRoutes(api fiber.Router, h *handler.RecordHandler, authRequired, patientCtx fiber.Handler) {
	group := api.Group("/records", authRequired, patientCtx)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/:id/download", h.Download)
	group.Delete("/:id", h.Delete)
}
