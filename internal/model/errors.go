package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrInvalidRole     = errors.New("invalid role")

	// Media errors
	ErrVideoNotFound       = errors.New("video not found")
	ErrExtensionNotAllowed = errors.New("file extension not allowed")
	ErrEmptyFilename       = errors.New("empty filename")
)
