package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/api/http/middleware"
	"github.com/sumit1004/neurolink_backend/internal/service/routine"
)

type RoutineHandler struct {
	svc routine.Service
}

func NewRoutineHandler(svc routine.Service) *RoutineHandler {
	return &RoutineHandler{svc: svc}
}

// GET /api/v1/routines
func (h *RoutineHandler) List(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	views, err := h.svc.ListWithTasks(c.Context(), p.ID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, views)
}

// POST /api/v1/routines
func (h *RoutineHandler) Create(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Title string   `json:"title"`
		Time  string   `json:"time"`
		Days  []string `json:"days"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.Create(c.Context(), p.ID, routine.CreateRequest{
		Title: body.Title,
		Time:  body.Time,
		Days:  body.Days,
	})
	if err != nil {
		return mapRoutineError(c, err)
	}
	return created(c, r)
}

// DELETE /api/v1/routines/:id
func (h *RoutineHandler) Delete(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid routine id")
	}

	if err := h.svc.Delete(c.Context(), p.ID, id); err != nil {
		return mapRoutineError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/routines/:id/tasks
func (h *RoutineHandler) AddTask(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid routine id")
	}

	var body struct {
		Title string     `json:"title"`
		DueAt *time.Time `json:"due_at"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	t, err := h.svc.AddTask(c.Context(), p.ID, id, routine.AddTaskRequest{
		Title: body.Title,
		DueAt: body.DueAt,
	})
	if err != nil {
		return mapRoutineError(c, err)
	}
	return created(c, t)
}

// POST /api/v1/tasks/:id/complete
func (h *RoutineHandler) CompleteTask(c fiber.Ctx) error {
	p, valid := middleware.PatientFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}

	t, err := h.svc.CompleteTask(c.Context(), p.ID, id)
	if err != nil {
		return mapRoutineError(c, err)
	}
	return ok(c, t)
}

func mapRoutineError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, routine.ErrTitleRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, routine.ErrEmptySchedule):
		return badRequest(c, err.Error())
	case errors.Is(err, routine.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, routine.ErrTaskNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}
