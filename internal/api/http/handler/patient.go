package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/schema"
	"github.com/sumit1004/neurolink_backend/internal/service/patient"
	pasetotoken "github.com/sumit1004/neurolink_backend/pkg/paseto"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// GET /api/v1/patient
func (h *PatientHandler) Get(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.Current(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, patient.ErrNotConfigured) {
			return c.Status(fiber.StatusPreconditionFailed).
				JSON(fiber.Map{"error": "no patient configured"})
		}
		return internalError(c)
	}

	return ok(c, p)
}

// PUT /api/v1/patient
//
// Creates the profile on first save and updates it afterwards. The response
// carries the full profile so the dashboard can re-render its header.
func (h *PatientHandler) Save(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DisplayName      string                   `json:"display_name"`
		DateOfBirth      string                   `json:"date_of_birth"` // YYYY-MM-DD
		Address          *string                  `json:"address"`
		PhotoURL         *string                  `json:"photo_url"`
		ConditionNotes   *string                  `json:"condition_notes"`
		EmergencyContact *schema.EmergencyContact `json:"emergency_contact"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	dob, err := time.Parse("2006-01-02", body.DateOfBirth)
	if err != nil {
		return badRequest(c, "date_of_birth must be YYYY-MM-DD")
	}

	p, err := h.svc.Save(c.Context(), claims.UserID, patient.SaveRequest{
		DisplayName:      body.DisplayName,
		DateOfBirth:      dob,
		Address:          body.Address,
		PhotoURL:         body.PhotoURL,
		ConditionNotes:   body.ConditionNotes,
		EmergencyContact: body.EmergencyContact,
	})
	if err != nil {
		switch {
		case errors.Is(err, patient.ErrNameRequired), errors.Is(err, patient.ErrDOBRequired):
			return badRequest(c, err.Error())
		default:
			return internalError(c)
		}
	}

	return ok(c, p)
}
