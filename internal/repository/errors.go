package repository

import "errors"

// Common repository errors
var (
	// ErrTodoNotFound is returned when no todo exists for the given id
	ErrTodoNotFound = errors.New("todo not found")
)
