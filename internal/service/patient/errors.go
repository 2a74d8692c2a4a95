package patient

import "errors"

var (
	ErrNotConfigured = errors.New("no patient configured")
	ErrNameRequired  = errors.New("patient name is required")
	ErrDOBRequired   = errors.New("patient date of birth is required")
)
