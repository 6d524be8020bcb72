package models

// SnapshotVersion is the current snapshot document version
const SnapshotVersion = 1

// Snapshot is the portable form of every workspace and task.
// Timestamps are milliseconds since the Unix epoch so documents stay
// compatible with exports that predate the Go port.
type Snapshot struct {
	Version    int                 `json:"version" yaml:"version"`
	ID         string              `json:"id,omitempty" yaml:"id,omitempty"`
	ExportedAt int64               `json:"exportedAt,omitempty" yaml:"exportedAt,omitempty"`
	Workspaces []SnapshotWorkspace `json:"workspaces" yaml:"workspaces"`
	Tasks      []SnapshotTask      `json:"tasks" yaml:"tasks"`
}

// SnapshotWorkspace is a workspace entry inside a Snapshot
type SnapshotWorkspace struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// SnapshotTask is a task entry inside a Snapshot.
// WorkspaceID refers to SnapshotWorkspace.ID, not to a stored row.
type SnapshotTask struct {
	ID          int        `json:"id" yaml:"id"`
	Text        string     `json:"text" yaml:"text"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	WorkspaceID int        `json:"workspaceId" yaml:"workspaceId"`
	Status      TaskStatus `json:"status" yaml:"status"`
	CreatedAt   int64      `json:"createdAt" yaml:"createdAt"`
	CompletedAt *int64     `json:"completedAt" yaml:"completedAt"`
}
