package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/api/http/middleware"
	"github.com/sumit1004/neurolink_backend/internal/service/record"
)

type RecordHandler struct {
	svc record.Service
}

func NewRecordHandler(svc record.Service) *RecordHandler {
	return &RecordHandler{svc: svc}
}

// GET /api/v1/records
func (h *RecordHandler) List(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	rows, err := h.svc.List(c.Context(), p.ID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, rows)
}

// POST /api/v1/records  (multipart: title, file)
func (h *RecordHandler) Create(c fiber.Ctx) error {
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

	r, err := h.svc.Create(c.Context(), p.ID, record.CreateRequest{
		Title:    c.FormValue("title"),
		FileName: fh.Filename,
		FileBody: body,
		FileMime: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		switch {
		case errors.Is(err, record.ErrTitleRequired), errors.Is(err, record.ErrFileRequired):
			return badRequest(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return created(c, r)
}

// GET /api/v1/records/:id/download
func (h *RecordHandler) Download(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid record id")
	}

	url, err := h.svc.DownloadURL(c.Context(), p.ID, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, fiber.Map{"url": url})
}

// DELETE /api/v1/records/:id
func (h *RecordHandler) Delete(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid record id")
	}

	if err := h.svc.Delete(c.Context(), p.ID, id); err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return noContent(c)
}
