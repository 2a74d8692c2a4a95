package routine

import "errors"

var (
	ErrNotFound      = errors.New("routine not found")
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("routine title is required")
	ErrEmptySchedule = errors.New("schedule must include at least one day")
)
