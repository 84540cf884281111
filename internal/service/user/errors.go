package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidRole           = errors.New("invalid role")

	ErrUserNotFound = errors.New("user not found")
)
