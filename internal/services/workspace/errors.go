package workspace

import "errors"

// Domain errors for workspace service
var (
	// Validation errors
	ErrEmptyName          = errors.New("workspace name cannot be empty")
	ErrNameTooLong        = errors.New("workspace name cannot exceed 100 characters")
	ErrInvalidWorkspaceID = errors.New("invalid workspace ID")

	// Business logic errors
	ErrWorkspaceNotFound = errors.New("workspace not found")
)

// MaxNameLength is the longest accepted workspace name, in characters
const MaxNameLength = 100
