package service

import "errors"

// Outcome taxonomy. Every operation translates lower-layer failures into one
// of these before returning; anything else reaching the transport is treated
// as an internal storage fault and reported generically.
var (
	ErrValidation          = errors.New("invalid input")
	ErrDuplicateUsername   = errors.New("username already registered")
	ErrUsernameNotFound    = errors.New("username not found")
	ErrInvalidPassword     = errors.New("wrong password")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateSetting    = errors.New("setting already registered")
)
