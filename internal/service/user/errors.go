package user

import "errors"

var (
	ErrUserAlreadyRegistered = errors.New("User already registered")
	ErrInvalidUserType       = errors.New("invalid user type")
	ErrUserNotFound          = errors.New("user not found")
)
