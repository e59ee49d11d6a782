package user

import "errors"

// Service errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already in use")
	ErrInvalidUserType = errors.New("invalid user type")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidCPF      = errors.New("cpf must be 11 digits")
)
