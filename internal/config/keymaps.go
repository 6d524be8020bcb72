package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	DeleteTask string `yaml:"delete_task"`
	ToggleTask string `yaml:"toggle_task"`

	// Workspaces
	CreateWorkspace string `yaml:"create_workspace"`
	RenameWorkspace string `yaml:"rename_workspace"`
	DeleteWorkspace string `yaml:"delete_workspace"`
	NextWorkspace   string `yaml:"next_workspace"`
	PrevWorkspace   string `yaml:"prev_workspace"`

	// Navigation
	PrevTask    string `yaml:"prev_task"`
	NextTask    string `yaml:"next_task"`
	CycleFilter string `yaml:"cycle_filter"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:    "a",
		EditTask:   "e",
		DeleteTask: "d",
		ToggleTask: "space",

		// Workspaces
		CreateWorkspace: "W",
		RenameWorkspace: "R",
		DeleteWorkspace: "D",
		NextWorkspace:   "l",
		PrevWorkspace:   "h",

		// Navigation
		PrevTask:    "k",
		NextTask:    "j",
		CycleFilter: "f",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ToggleTask, defaults.ToggleTask)
	fill(&k.CreateWorkspace, defaults.CreateWorkspace)
	fill(&k.RenameWorkspace, defaults.RenameWorkspace)
	fill(&k.DeleteWorkspace, defaults.DeleteWorkspace)
	fill(&k.NextWorkspace, defaults.NextWorkspace)
	fill(&k.PrevWorkspace, defaults.PrevWorkspace)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.CycleFilter, defaults.CycleFilter)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
