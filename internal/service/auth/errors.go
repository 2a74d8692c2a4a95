package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrEmailNotConfirmed  = errors.New("email address is not confirmed")
	ErrAlreadyConfirmed   = errors.New("email address is already confirmed")
	ErrConfirmTokenBad    = errors.New("confirmation link is invalid or expired")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)
