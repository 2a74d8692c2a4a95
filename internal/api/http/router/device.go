package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

// Device routes take writes from the companion/wearable agents. They share
// the caregiver auth scheme and resolve the same patient context.
func (r *Router) registerDeviceRoutes(
	api fiber.Router,
	ch *handler.ConversationHandler,
	lh *handler.LocationHandler,
	ah *handler.AlertHandler,
	authRequired, patientCtx fiber.Handler,
) {
	group := api.Group("/device", authRequired, patientCtx)
	group.Post("/conversations", ch.Ingest)
	group.Post("/location", lh.Ingest)
	group.Post("/alerts", ah.Ingest)
}
