package service

import "errors"

// Domain errors. Callers match them with errors.Is.
var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAuthenticationFailed = errors.New("invalid username or password")
	ErrInvalidToken         = errors.New("invalid token")
	ErrStorage              = errors.New("storage failure")
)
