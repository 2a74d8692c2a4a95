package routine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// View models
// ---------------------------------------------------------------------------

// TaskView is a display-ready task row.
type TaskView struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	Completed bool       `json:"completed"`
}

// RoutineView is a display-ready routine card with its tasks joined in.
type RoutineView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	TimeDisplay string     `json:"time_display"`
	Days        []string   `json:"days"`
	Active      bool       `json:"active"`
	Tasks       []TaskView `json:"tasks"`
	TaskCount   int        `json:"task_count"`
}

// routineRow and taskRow are the minimal inputs the join needs. Keeping them
// plain lets the join and formatting logic run without a database.
type routineRow struct {
	ID       uuid.UUID
	Title    string
	Time     string
	Days     []string
	Active   bool
}

type taskRow struct {
	ID        uuid.UUID
	RoutineID uuid.UUID
	Title     string
	DueAt     *time.Time
	Completed bool
}

// buildViews joins tasks onto their routines, preserving routine order and
// task order within each routine.
func buildViews(routines []routineRow, tasks []taskRow) []RoutineView {
	byRoutine := make(map[uuid.UUID][]TaskView, len(routines))
	for _, t := range tasks {
		byRoutine[t.RoutineID] = append(byRoutine[t.RoutineID], TaskView{
			ID:        t.ID,
			Title:     t.Title,
			DueAt:     t.DueAt,
			Completed: t.Completed,
		})
	}

	out := make([]RoutineView, 0, len(routines))
	for _, r := range routines {
		tv := byRoutine[r.ID]
		if tv == nil {
			tv = []TaskView{}
		}
		out = append(out, RoutineView{
			ID:          r.ID,
			Title:       r.Title,
			TimeDisplay: FormatScheduleTime(r.Time),
			Days:        AbbrevDays(r.Days),
			Active:      r.Active,
			Tasks:       tv,
			TaskCount:   len(tv),
		})
	}
	return out
}

// FormatScheduleTime renders an "HH:MM" 24-hour schedule time as a 12-hour
// display string ("08:00" → "8:00 AM"). Unparseable input is returned as-is.
func FormatScheduleTime(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return hhmm
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return hhmm
	}

	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}

var dayAbbrevs = map[string]string{
	"monday":    "Mon",
	"tuesday":   "Tue",
	"wednesday": "Wed",
	"thursday":  "Thu",
	"friday":    "Fri",
	"saturday":  "Sat",
	"sunday":    "Sun",
}

// AbbrevDays maps lowercase weekday names to three-letter display labels.
// Unrecognized entries pass through unchanged.
func AbbrevDays(days []string) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		if abbr, ok := dayAbbrevs[strings.ToLower(strings.TrimSpace(d))]; ok {
			out = append(out, abbr)
			continue
		}
		out = append(out, d)
	}
	return out
}

// validDay reports whether d names a weekday the schedule accepts.
func validDay(d string) bool {
	_, ok := dayAbbrevs[strings.ToLower(strings.TrimSpace(d))]
	return ok
}
