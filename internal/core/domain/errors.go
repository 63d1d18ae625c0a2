package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrClubNotFound       = errors.New("club not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrForbidden          = errors.New("access forbidden")
)
