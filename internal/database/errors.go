package database

import "errors"

// ErrDuplicateName wraps the UNIQUE violation raised for a taken workspace name
var ErrDuplicateName = errors.New("workspace name already exists")
