package apperrors

import "errors"

var (
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidPassword = errors.New("password does not meet complexity requirements")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrNotCustomer     = errors.New("user is not a customer")
)
