package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/middleware"
	"github.com/sumit1004/neurolink_backend/internal/service/location"
)

type LocationHandler struct {
	svc location.Service
}

func NewLocationHandler(svc location.Service) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// GET /api/v1/location
func (h *LocationHandler) Latest(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	ping, err := h.svc.Latest(c.Context(), p.ID)
	if err != nil {
		if errors.Is(err, location.ErrNoLocation) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, ping)
}

// GET /api/v1/location/history
func (h *LocationHandler) History(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	rows, err := h.svc.History(c.Context(), p.ID, limit)
	if err != nil {
		return internalError(c)
	}
	return ok(c, rows)
}

// POST /api/v1/device/location  (companion device ingest)
func (h *LocationHandler) Ingest(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Lat        float64    `json:"lat"`
		Lon        float64    `json:"lon"`
		Accuracy   *float64   `json:"accuracy"`
		RecordedAt *time.Time `json:"recorded_at"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ping, err := h.svc.Ingest(c.Context(), p.ID, location.IngestRequest{
		Lat:        body.Lat,
		Lon:        body.Lon,
		Accuracy:   body.Accuracy,
		RecordedAt: body.RecordedAt,
	})
	if err != nil {
		if errors.Is(err, location.ErrBadCoords) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}
	return created(c, ping)
}
