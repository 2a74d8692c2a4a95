package location

import "errors"

var (
	ErrNoLocation = errors.New("no location reported yet")
	ErrBadCoords  = errors.New("latitude/longitude out of range")
)
