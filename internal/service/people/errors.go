package people

import "errors"

var (
	ErrNotFound         = errors.New("known person not found")
	ErrNameRequired     = errors.New("person name is required")
	ErrRelationRequired = errors.New("relation is required")
	ErrPhotoRequired    = errors.New("a photo is required")
)
