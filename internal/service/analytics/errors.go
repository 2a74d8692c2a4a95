package analytics

import "errors"

var (
	ErrNotJSONFile = errors.New("only .json files can be imported")
	ErrInvalidJSON = errors.New("invalid JSON file")
	ErrNoData      = errors.New("no analytics data imported yet")
)
