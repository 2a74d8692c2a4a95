package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

func (r *Router) registerPeopleRoutes(api fiber.Router, h *handler.PeopleHandler, authRequired, patientCtx fiber.Handler) {
	group := api.Group("/people", authRequired, patientCtx)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Patch("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}
