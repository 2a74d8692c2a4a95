package doctor

import "errors"

var (
	ErrNotFound           = errors.New("doctor contact not found")
	ErrNameRequired       = errors.New("doctor name is required")
	ErrPhoneRequired      = errors.New("phone number is required")
	ErrSpecialityRequired = errors.New("speciality is required")
)
