package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyText          = errors.New("task text cannot be empty")
	ErrInvalidTaskID      = errors.New("invalid task ID")
	ErrInvalidWorkspaceID = errors.New("invalid workspace ID")
	ErrInvalidStatus      = errors.New("invalid task status")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)
