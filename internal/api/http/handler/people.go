package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/api/http/middleware"
	"github.com/sumit1004/neurolink_backend/internal/service/people"
)

type PeopleHandler struct {
	svc people.Service
}

func NewPeopleHandler(svc people.Service) *PeopleHandler {
	return &PeopleHandler{svc: svc}
}

// GET /api/v1/people
func (h *PeopleHandler) List(c fiber.Ctx) error {
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

// POST /api/v1/people  (multipart: name, relation, notes, photo)
func (h *PeopleHandler) Create(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return badRequest(c, "photo file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "cannot read photo file")
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		return badRequest(c, "cannot read photo file")
	}

	var notes *string
	if v := c.FormValue("notes"); v != "" {
		notes = &v
	}

	person, err := h.svc.Create(c.Context(), p.ID, people.CreateRequest{
		Name:      c.FormValue("name"),
		Relation:  c.FormValue("relation"),
		Notes:     notes,
		PhotoName: fh.Filename,
		PhotoBody: body,
		PhotoMime: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		return mapPeopleError(c, err)
	}
	return created(c, person)
}

// PATCH /api/v1/people/:id
func (h *PeopleHandler) Update(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid person id")
	}

	var body struct {
		Name     *string `json:"name"`
		Relation *string `json:"relation"`
		Notes    *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	person, err := h.svc.Update(c.Context(), p.ID, id, people.UpdateRequest{
		Name:     body.Name,
		Relation: body.Relation,
		Notes:    body.Notes,
	})
	if err != nil {
		return mapPeopleError(c, err)
	}
	return ok(c, person)
}

// DELETE /api/v1/people/:id
func (h *PeopleHandler) Delete(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid person id")
	}

	if err := h.svc.Delete(c.Context(), p.ID, id); err != nil {
		return mapPeopleError(c, err)
	}
	return noContent(c)
}

func mapPeopleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, people.ErrNameRequired),
		errors.Is(err, people.ErrRelationRequired),
		errors.Is(err, people.ErrPhotoRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, people.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}
