package models

// Workspace is a named container grouping tasks.
// Names are unique across all workspaces.
type Workspace struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID lets output formatters print just the identifier
func (w *Workspace) GetID() int {
	return w.ID
}
