package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(api fiber.Router, h *handler.PatientHandler, authRequired fiber.Handler) {
	group := api.Group("/patient", authRequired)
	group.Get("/", h.Get)
	group.Put("/", h.Save)
}
