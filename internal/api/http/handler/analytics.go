package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/api/http/middleware"
	"github.com/sumit1004/neurolink_backend/internal/service/analytics"
)

type AnalyticsHandler struct {
	svc analytics.Service
}

func NewAnalyticsHandler(svc analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// GET /api/v1/analytics/summary
func (h *AnalyticsHandler) Summary(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	s, err := h.svc.Summary(c.Context(), p.ID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, s)
}

// GET /api/v1/analytics/counts
func (h *AnalyticsHandler) Counts(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	counts, err := h.svc.DataCounts(c.Context(), p.ID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, counts)
}

// POST /api/v1/analytics/import  (multipart: file)
func (h *AnalyticsHandler) Import(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "cannot read file")
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		return badRequest(c, "cannot read file")
	}

	if err := h.svc.Import(c.Context(), p.ID, fh.Filename, body); err != nil {
		switch {
		case errors.Is(err, analytics.ErrNotJSONFile), errors.Is(err, analytics.ErrInvalidJSON):
			return badRequest(c, err.Error())
		default:
			return internalError(c)
		}
	}

	counts, err := h.svc.DataCounts(c.Context(), p.ID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, counts)
}
