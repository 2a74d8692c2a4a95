package record

import "errors"

var (
	ErrNotFound      = errors.New("health record not found")
	ErrTitleRequired = errors.New("record title is required")
	ErrFileRequired  = errors.New("a file is required")
)
