package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(api fiber.Router, h *handler.DoctorHandler, authRequired, patientCtx fiber.Handler) {
	group := api.Group("/doctors", authRequired, patientCtx)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Delete("/:id", h.Delete)
}
