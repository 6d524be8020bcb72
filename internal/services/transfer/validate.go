package transfer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/doable/internal/models"
	workspaceservice "github.com/thenoetrevino/doable/internal/services/workspace"
)

// Validate checks a decoded snapshot before anything is written.
// Version 0 is accepted for documents exported before versioning.
func Validate(snapshot *models.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: empty document", ErrMalformedSnapshot)
	}
	if snapshot.Version < 0 || snapshot.Version > models.SnapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedSnapshot, snapshot.Version)
	}
	// Both lists must be present; an explicit empty list is fine
	if snapshot.Workspaces == nil {
		return fmt.Errorf("%w: missing workspaces", ErrMalformedSnapshot)
	}
	if snapshot.Tasks == nil {
		return fmt.Errorf("%w: missing tasks", ErrMalformedSnapshot)
	}

	workspaceIDs := make(map[int]struct{}, len(snapshot.Workspaces))
	names := make(map[string]struct{}, len(snapshot.Workspaces))
	for i, ws := range snapshot.Workspaces {
		name := strings.TrimSpace(ws.Name)
		if name == "" {
			return fmt.Errorf("%w: workspace #%d has an empty name", ErrMalformedSnapshot, i)
		}
		if utf8.RuneCountInString(name) > workspaceservice.MaxNameLength {
			return fmt.Errorf("%w: workspace name %q is longer than %d characters",
				ErrMalformedSnapshot, name, workspaceservice.MaxNameLength)
		}
		if _, ok := names[name]; ok {
			return fmt.Errorf("%w: duplicate workspace name %q", ErrMalformedSnapshot, name)
		}
		if _, ok := workspaceIDs[ws.ID]; ok {
			return fmt.Errorf("%w: duplicate workspace id %d", ErrMalformedSnapshot, ws.ID)
		}
		names[name] = struct{}{}
		workspaceIDs[ws.ID] = struct{}{}
	}

	taskIDs := make(map[int]struct{}, len(snapshot.Tasks))
	for i, task := range snapshot.Tasks {
		if _, ok := taskIDs[task.ID]; ok {
			return fmt.Errorf("%w: duplicate task id %d", ErrMalformedSnapshot, task.ID)
		}
		taskIDs[task.ID] = struct{}{}

		if strings.TrimSpace(task.Text) == "" {
			return fmt.Errorf("%w: task #%d has empty text", ErrMalformedSnapshot, i)
		}
		if !task.Status.Valid() {
			return fmt.Errorf("%w: task %d has invalid status %q", ErrMalformedSnapshot, task.ID, task.Status)
		}
		if _, ok := workspaceIDs[task.WorkspaceID]; !ok {
			return fmt.Errorf("%w: task %d references unknown workspace %d",
				ErrMalformedSnapshot, task.ID, task.WorkspaceID)
		}
		if task.CreatedAt <= 0 {
			return fmt.Errorf("%w: task %d has no createdAt", ErrMalformedSnapshot, task.ID)
		}
		done := task.Status == models.TaskStatusDone
		if done != (task.CompletedAt != nil) {
			return fmt.Errorf("%w: task %d has status %s but completedAt %s",
				ErrMalformedSnapshot, task.ID, task.Status, describeMillis(task.CompletedAt))
		}
	}

	return nil
}

func describeMillis(v *int64) string {
	if v == nil {
		return "unset"
	}
	return fmt.Sprintf("%d", *v)
}
