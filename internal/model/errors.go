package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Move errors
	ErrInvalidMove = errors.New("invalid move")
)
