package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/middleware"
	"github.com/sumit1004/neurolink_backend/internal/service/alert"
)

type AlertHandler struct {
	svc alert.Service
}

func NewAlertHandler(svc alert.Service) *AlertHandler {
	return &AlertHandler{svc: svc}
}

// GET /api/v1/alerts
func (h *AlertHandler) Timeline(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	rows, err := h.svc.Timeline(c.Context(), p.ID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, rows)
}

// POST /api/v1/device/alerts  (companion device ingest)
func (h *AlertHandler) Ingest(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Type    string  `json:"type"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.Ingest(c.Context(), p.ID, alert.IngestRequest{
		Type:    body.Type,
		Message: body.Message,
		Lat:     body.Lat,
		Lon:     body.Lon,
	})
	if err != nil {
		if errors.Is(err, alert.ErrUnknownType) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}
	return created(c, a)
}
