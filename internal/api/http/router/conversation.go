package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

func (r *Router) registerConversationRoutes(api fiber.Router, h *handler.ConversationHandler, authRequired, patientCtx fiber.Handler) {
	group := api.Group("/conversations", authRequired, patientCtx)
	group.Get("/", h.List)
	group.Get("/:id", h.Get)
}
