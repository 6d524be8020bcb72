package models

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus is the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusActive TaskStatus = "active"
	TaskStatusDone   TaskStatus = "done"
)

// Valid reports whether s is a known status
func (s TaskStatus) Valid() bool {
	return s == TaskStatusActive || s == TaskStatusDone
}

// Toggle returns the opposite status
func (s TaskStatus) Toggle() TaskStatus {
	if s == TaskStatusDone {
		return TaskStatusActive
	}
	return TaskStatusDone
}

// ParseTaskStatus maps user input (case-insensitive) to a TaskStatus
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("invalid status '%s' (must be: active, done)", s)
	}
	return status, nil
}

// Task represents a single to-do item inside a workspace.
// CompletedAt is non-nil exactly when Status is TaskStatusDone.
type Task struct {
	ID          int        `json:"id"`
	Text        string     `json:"text"`
	Description string     `json:"description"`
	WorkspaceID int        `json:"workspace_id"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// GetID lets output formatters print just the identifier
func (t *Task) GetID() int {
	return t.ID
}

// IsDone reports whether the task is completed
func (t *Task) IsDone() bool {
	return t.Status == TaskStatusDone
}
