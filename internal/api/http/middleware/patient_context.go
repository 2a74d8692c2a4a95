package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/repo"
	"github.com/sumit1004/neurolink_backend/internal/service/patient"
	pasetotoken "github.com/sumit1004/neurolink_backend/pkg/paseto"
)

const LocalPatient = "patient"

// PatientContext resolves the caregiver's patient profile and stores it in
// locals. Patient-scoped routes answer 412 until a profile exists, which the
// dashboard shows as its "set up your patient" placeholder.
func PatientContext(svc patient.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		p, err := svc.Current(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, patient.ErrNotConfigured) {
				return c.Status(fiber.StatusPreconditionFailed).
					JSON(fiber.Map{"error": "no patient configured"})
			}
			return fiber.ErrInternalServerError
		}

		c.Locals(LocalPatient, p)
		return c.Next()
	}
}

// PatientFromFiber retrieves the resolved patient from Fiber locals.
func PatientFromFiber(c fiber.Ctx) (*repo.Patient, bool) {
	v := c.Locals(LocalPatient)
	p, ok := v.(*repo.Patient)
	return p, ok && p != nil
}
