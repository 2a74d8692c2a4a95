package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/sumit1004/neurolink_backend/internal/service/auth"
	"github.com/sumit1004/neurolink_backend/internal/service/patient"
	pasetotoken "github.com/sumit1004/neurolink_backend/pkg/paseto"
)

type AuthHandler struct {
	svc      auth.Service
	patients patient.Service
}

func NewAuthHandler(svc auth.Service, patients patient.Service) *AuthHandler {
	return &AuthHandler{svc: svc, patients: patients}
}

// POST /api/v1/auth/signup
func (h *AuthHandler) SignUp(c fiber.Ctx) error {
	var body struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.SignUp(c.Context(), auth.SignUpRequest{
		Email:       body.Email,
		Password:    body.Password,
		DisplayName: body.DisplayName,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return created(c, fiber.Map{
		"id":      u.ID,
		"email":   u.Email,
		"message": "check your inbox to confirm your email address",
	})
}

// GET /api/v1/auth/confirm?token=...
func (h *AuthHandler) Confirm(c fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return badRequest(c, "token is required")
	}

	if err := h.svc.ConfirmEmail(c.Context(), token); err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"message": "email confirmed, you can sign in now"})
}

// POST /api/v1/auth/resend-confirmation
func (h *AuthHandler) ResendConfirmation(c fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.ResendConfirmation(c.Context(), body.Email); err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"message": "confirmation email sent"})
}

// POST /api/v1/auth/signin
func (h *AuthHandler) SignIn(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.SignIn(c.Context(), auth.SignInRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/signout  (requires AuthRequired middleware)
func (h *AuthHandler) SignOut(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.SignOut(c.Context(), *claims.SessionID); err != nil {
		return internalError(c)
	}

	return noContent(c)
}

// GET /api/v1/auth/session  (requires AuthRequired middleware)
//
// Returns the signed-in caregiver plus the patient snapshot the dashboard
// bootstraps from. The patient field is null until a profile is saved.
func (h *AuthHandler) Session(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetUser(c.Context(), claims.UserID)
	if err != nil {
		return mapAuthError(c, err)
	}

	p, err := h.patients.Current(c.Context(), claims.UserID)
	if err != nil && !errors.Is(err, patient.ErrNotConfigured) {
		return internalError(c)
	}

	resp := fiber.Map{
		"user": fiber.Map{
			"id":              u.ID,
			"email":           u.Email,
			"display_name":    u.DisplayName,
			"email_confirmed": u.EmailConfirmed,
		},
		"patient": nil,
	}
	if p != nil {
		resp["patient"] = p
	}

	return ok(c, resp)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrInvalidEmail):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrConfirmTokenBad):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrAlreadyConfirmed):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailNotConfirmed):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrAccountSuspended):
		return forbidden(c)
	case errors.Is(err, auth.ErrSessionNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	default:
		return internalError(c)
	}
}
