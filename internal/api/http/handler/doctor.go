package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/api/http/middleware"
	"github.com/sumit1004/neurolink_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

// GET /api/v1/doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
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

// POST /api/v1/doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name       string  `json:"name"`
		Speciality string  `json:"speciality"`
		Phone      string  `json:"phone"`
		Email      *string `json:"email"`
		Notes      *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.Create(c.Context(), p.ID, doctor.CreateRequest{
		Name:       body.Name,
		Speciality: body.Speciality,
		Phone:      body.Phone,
		Email:      body.Email,
		Notes:      body.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, doctor.ErrNameRequired),
			errors.Is(err, doctor.ErrSpecialityRequired),
			errors.Is(err, doctor.ErrPhoneRequired):
			return badRequest(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return created(c, d)
}

// DELETE /api/v1/doctors/:id
func (h *DoctorHandler) Delete(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	if err := h.svc.Delete(c.Context(), p.ID, id); err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return noContent(c)
}
