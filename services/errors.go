package services

import "errors"

var (
	// ErrLogNotFound is returned when a log does not exist or does not belong
	// to the requesting user.
	ErrLogNotFound = errors.New("log not found")

	// ErrUserNotFound is returned when a user document cannot be located.
	ErrUserNotFound = errors.New("user not found")
)
