package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/api/http/middleware"
	"github.com/sumit1004/neurolink_backend/internal/service/conversation"
)

type ConversationHandler struct {
	svc conversation.Service
}

func NewConversationHandler(svc conversation.Service) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

// GET /api/v1/conversations
func (h *ConversationHandler) List(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	rows, err := h.svc.List(c.Context(), p.ID, limit)
	if err != nil {
		return internalError(c)
	}
	return ok(c, rows)
}

// GET /api/v1/conversations/:id
func (h *ConversationHandler) Get(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	conv, err := h.svc.GetByID(c.Context(), p.ID, id)
	if err != nil {
		if errors.Is(err, conversation.ErrNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, conv)
}

// POST /api/v1/device/conversations  (companion device ingest)
func (h *ConversationHandler) Ingest(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PersonName string     `json:"person_name"`
		Summary    *string    `json:"summary"`
		Transcript *string    `json:"transcript"`
		AudioURL   *string    `json:"audio_url"`
		OccurredAt *time.Time `json:"occurred_at"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PersonName == "" {
		return badRequest(c, "person_name is required")
	}

	conv, err := h.svc.Ingest(c.Context(), p.ID, conversation.IngestRequest{
		PersonName: body.PersonName,
		Summary:    body.Summary,
		Transcript: body.Transcript,
		AudioURL:   body.AudioURL,
		OccurredAt: body.OccurredAt,
	})
	if err != nil {
		return internalError(c)
	}
	return created(c, conv)
}
