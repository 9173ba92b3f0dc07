package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidToken     = errors.New("invalid token")

	// Input errors raised before any request leaves the client.
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMissingUserID    = errors.New("user id not available")
)
