package routine

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

// fakeListSource records which of the two list queries were issued.
type fakeListSource struct {
	routines []routineRow
	tasks    []taskRow

	routineErr error

	routineCalls int
	taskCalls    int
	lastTaskIDs  []uuid.UUID
}

func (f *fakeListSource) routinesFor(_ context.Context, _ uuid.UUID) ([]routineRow, error) {
	f.routineCalls++
	return f.routines, f.routineErr
}

func (f *fakeListSource) tasksFor(_ context.Context, ids []uuid.UUID) ([]taskRow, error) {
	f.taskCalls++
	f.lastTaskIDs = ids
	return f.tasks, nil
}

func TestListWithTasksSkipsTaskQueryWhenNoRoutines(t *testing.T) {
	src := &fakeListSource{}

	views, err := listWithTasks(context.Background(), src, uuid.Must(uuid.NewV7()))
	if err != nil {
		t.Fatalf("listWithTasks failed: %v", err)
	}

	if src.taskCalls != 0 {
		t.Errorf("task query issued %d times for zero routines, want 0", src.taskCalls)
	}
	if views == nil || len(views) != 0 {
		t.Errorf("expected empty non-nil view slice, got %v", views)
	}
}

func TestListWithTasksQueriesTasksForAllRoutines(t *testing.T) {
	r1 := uuid.Must(uuid.NewV7())
	r2 := uuid.Must(uuid.NewV7())
	src := &fakeListSource{
		routines: []routineRow{
			{ID: r1, Title: "Morning walk", Time: "08:00", Days: []string{"monday"}, Active: true},
			{ID: r2, Title: "Evening pills", Time: "20:30", Days: []string{"friday"}, Active: true},
		},
		tasks: []taskRow{
			{ID: uuid.Must(uuid.NewV7()), RoutineID: r2, Title: "Take blister pack"},
		},
	}

	views, err := listWithTasks(context.Background(), src, uuid.Must(uuid.NewV7()))
	if err != nil {
		t.Fatalf("listWithTasks failed: %v", err)
	}

	if src.taskCalls != 1 {
		t.Fatalf("task query issued %d times, want 1", src.taskCalls)
	}
	if len(src.lastTaskIDs) != 2 || src.lastTaskIDs[0] != r1 || src.lastTaskIDs[1] != r2 {
		t.Errorf("task query got routine ids %v, want [%s %s]", src.lastTaskIDs, r1, r2)
	}
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].TaskCount != 0 || views[1].TaskCount != 1 {
		t.Errorf("task counts = %d/%d, want 0/1", views[0].TaskCount, views[1].TaskCount)
	}
}

func TestListWithTasksRoutineQueryError(t *testing.T) {
	src := &fakeListSource{routineErr: errors.New("connection reset")}

	_, err := listWithTasks(context.Background(), src, uuid.Must(uuid.NewV7()))
	if err == nil {
		t.Fatal("expected error from failed routine query")
	}
	if src.taskCalls != 0 {
		t.Errorf("task query issued after routine query failure")
	}
}
