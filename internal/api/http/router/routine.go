package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

func (r *Router) registerRoutineRoutes(api fiber.Router, h *handler.RoutineHandler, authRequired, patientCtx fiber.Handler) {
	routines := api.Group("/routines", authRequired, patientCtx)
	routines.Get("/", h.List)
	routines.Post("/", h.Create)
	routines.Delete("/:id", h.Delete)
	routines.Post("/:id/tasks", h.AddTask)

	tasks := api.Group("/tasks", authRequired, patientCtx)
	tasks.Post("/:id/complete", h.CompleteTask)
}
