package routine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/repo"
	entroutine "github.com/sumit1004/neurolink_backend/internal/repo/routine"
	enttask "github.com/sumit1004/neurolink_backend/internal/repo/task"
	"github.com/sumit1004/neurolink_backend/internal/schema"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Title string
	Time  string   // "HH:MM", 24-hour
	Days  []string // lowercase weekday names
}

type AddTaskRequest struct {
	Title string
	DueAt *time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// ListWithTasks returns all routines for a patient with their tasks
	// joined in, ordered oldest first.
	ListWithTasks(ctx context.Context, patientID uuid.UUID) ([]RoutineView, error)
	Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.Routine, error)
	Delete(ctx context.Context, patientID, routineID uuid.UUID) error
	AddTask(ctx context.Context, patientID, routineID uuid.UUID, req AddTaskRequest) (*repo.Task, error)
	CompleteTask(ctx context.Context, patientID, taskID uuid.UUID) (*repo.Task, error)

	// CompletionStats returns completed and total task counts across all of
	// the patient's routines.
	CompletionStats(ctx context.Context, patientID uuid.UUID) (completed, total int, err error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type routineService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &routineService{db: db}
}

// listSource supplies the two queries the routine list is built from.
// The service backs it with ent; the split keeps the orchestration testable
// without a database.
type listSource interface {
	routinesFor(ctx context.Context, patientID uuid.UUID) ([]routineRow, error)
	tasksFor(ctx context.Context, routineIDs []uuid.UUID) ([]taskRow, error)
}

// listWithTasks runs the two-query join. An empty routine set returns
// immediately; the task query is never issued.
func listWithTasks(ctx context.Context, src listSource, patientID uuid.UUID) ([]RoutineView, error) {
	routines, err := src.routinesFor(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}

	if len(routines) == 0 {
		return []RoutineView{}, nil
	}

	ids := make([]uuid.UUID, len(routines))
	for i, r := range routines {
		ids[i] = r.ID
	}

	tasks, err := src.tasksFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return buildViews(routines, tasks), nil
}

func (s *routineService) ListWithTasks(ctx context.Context, patientID uuid.UUID) ([]RoutineView, error) {
	return listWithTasks(ctx, s, patientID)
}

func (s *routineService) routinesFor(ctx context.Context, patientID uuid.UUID) ([]routineRow, error) {
	routines, err := s.db.Routine.Query().
		Where(entroutine.PatientID(patientID)).
		Order(entroutine.ByID(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]routineRow, len(routines))
	for i, r := range routines {
		row := routineRow{ID: r.ID, Title: r.Title, Active: r.Active}
		if r.Schedule != nil {
			row.Time = r.Schedule.Time
			row.Days = r.Schedule.Days
		}
		rows[i] = row
	}
	return rows, nil
}

func (s *routineService) tasksFor(ctx context.Context, routineIDs []uuid.UUID) ([]taskRow, error) {
	tasks, err := s.db.Task.Query().
		Where(enttask.RoutineIDIn(routineIDs...)).
		Order(enttask.ByID(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]taskRow, len(tasks))
	for i, t := range tasks {
		rows[i] = taskRow{
			ID:        t.ID,
			RoutineID: t.RoutineID,
			Title:     t.Title,
			DueAt:     t.DueAt,
			Completed: t.Completed,
		}
	}
	return rows, nil
}

func (s *routineService) Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.Routine, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	// Schedule validation happens before any database work.
	if len(req.Days) == 0 {
		return nil, ErrEmptySchedule
	}
	days := make([]string, 0, len(req.Days))
	for _, d := range req.Days {
		if !validDay(d) {
			return nil, fmt.Errorf("%w: unknown day %q", ErrEmptySchedule, d)
		}
		days = append(days, strings.ToLower(strings.TrimSpace(d)))
	}

	r, err := s.db.Routine.Create().
		SetPatientID(patientID).
		SetTitle(req.Title).
		SetSchedule(&schema.Schedule{Time: req.Time, Days: days}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create routine: %w", err)
	}
	return r, nil
}

func (s *routineService) Delete(ctx context.Context, patientID, routineID uuid.UUID) error {
	r, err := s.db.Routine.Query().
		Where(entroutine.ID(routineID), entroutine.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get routine: %w", err)
	}

	// Tasks go first so the routine row never dangles children.
	if _, err := s.db.Task.Delete().Where(enttask.RoutineID(r.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete routine tasks: %w", err)
	}
	if err := s.db.Routine.DeleteOne(r).Exec(ctx); err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	return nil
}

func (s *routineService) AddTask(ctx context.Context, patientID, routineID uuid.UUID, req AddTaskRequest) (*repo.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	exists, err := s.db.Routine.Query().
		Where(entroutine.ID(routineID), entroutine.PatientID(patientID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check routine: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	t, err := s.db.Task.Create().
		SetRoutineID(routineID).
		SetTitle(req.Title).
		SetNillableDueAt(req.DueAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (s *routineService) CompleteTask(ctx context.Context, patientID, taskID uuid.UUID) (*repo.Task, error) {
	t, err := s.db.Task.Query().
		Where(
			enttask.ID(taskID),
			enttask.HasRoutineWith(entroutine.PatientID(patientID)),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	// Completion is one-way; repeating it is a no-op.
	if t.Completed {
		return t, nil
	}

	t, err = s.db.Task.UpdateOne(t).
		SetCompleted(true).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	return t, nil
}

func (s *routineService) CompletionStats(ctx context.Context, patientID uuid.UUID) (int, int, error) {
	total, err := s.db.Task.Query().
		Where(enttask.HasRoutineWith(entroutine.PatientID(patientID))).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count tasks: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}

	completed, err := s.db.Task.Query().
		Where(
			enttask.HasRoutineWith(entroutine.PatientID(patientID)),
			enttask.Completed(true),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count completed tasks: %w", err)
	}
	return completed, total, nil
}
