package routine

import (
	"testing"

	"github.com/google/uuid"
)

func TestFormatScheduleTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"morning", "08:00", "8:00 AM"},
		{"midnight", "00:15", "12:15 AM"},
		{"noon", "12:00", "12:00 PM"},
		{"afternoon", "13:30", "1:30 PM"},
		{"late evening", "23:59", "11:59 PM"},
		{"single digit minute preserved", "09:05", "9:05 AM"},
		{"garbage passes through", "not a time", "not a time"},
		{"missing minutes passes through", "08", "08"},
		{"hour out of range passes through", "25:00", "25:00"},
		{"minute out of range passes through", "10:75", "10:75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatScheduleTime(tt.in); got != tt.want {
				t.Errorf("FormatScheduleTime(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAbbrevDays(t *testing.T) {
	got := AbbrevDays([]string{"monday", "Wednesday", " friday ", "someday"})
	want := []string{"Mon", "Wed", "Fri", "someday"}

	if len(got) != len(want) {
		t.Fatalf("AbbrevDays() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AbbrevDays()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildViews(t *testing.T) {
	r1 := uuid.Must(uuid.NewV7())
	r2 := uuid.Must(uuid.NewV7())

	routines := []routineRow{
		{ID: r1, Title: "Morning meds", Time: "08:00", Days: []string{"monday", "tuesday"}, Active: true},
		{ID: r2, Title: "Evening walk", Time: "18:30", Days: []string{"sunday"}, Active: false},
	}
	tasks := []taskRow{
		{ID: uuid.Must(uuid.NewV7()), RoutineID: r1, Title: "Take pills"},
		{ID: uuid.Must(uuid.NewV7()), RoutineID: r1, Title: "Drink water", Completed: true},
	}

	views := buildViews(routines, tasks)
	if len(views) != 2 {
		t.Fatalf("buildViews() returned %d views, want 2", len(views))
	}

	// Routine order is preserved.
	if views[0].ID != r1 || views[1].ID != r2 {
		t.Error("buildViews() did not preserve routine order")
	}

	// Tasks land on the right routine, in order.
	if views[0].TaskCount != 2 {
		t.Errorf("first routine TaskCount = %d, want 2", views[0].TaskCount)
	}
	if views[0].Tasks[0].Title != "Take pills" || views[0].Tasks[1].Title != "Drink water" {
		t.Error("buildViews() did not preserve task order within a routine")
	}
	if !views[0].Tasks[1].Completed {
		t.Error("completed flag lost in view mapping")
	}

	// Routine with no tasks gets an empty (non-nil) slice.
	if views[1].Tasks == nil || views[1].TaskCount != 0 {
		t.Errorf("second routine tasks = %v (count %d), want empty slice", views[1].Tasks, views[1].TaskCount)
	}

	// Display fields are formatted.
	if views[0].TimeDisplay != "8:00 AM" {
		t.Errorf("TimeDisplay = %q, want %q", views[0].TimeDisplay, "8:00 AM")
	}
	if views[1].TimeDisplay != "6:30 PM" {
		t.Errorf("TimeDisplay = %q, want %q", views[1].TimeDisplay, "6:30 PM")
	}
	if views[0].Days[0] != "Mon" || views[0].Days[1] != "Tue" {
		t.Errorf("Days = %v, want abbreviated", views[0].Days)
	}
}

func TestBuildViewsEmpty(t *testing.T) {
	views := buildViews(nil, nil)
	if len(views) != 0 {
		t.Errorf("buildViews(nil, nil) = %v, want empty", views)
	}
}
