package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // success messages
	Delete string `yaml:"delete"` // destructive confirmations

	// Task state colors
	Active string `yaml:"active"`
	Done   string `yaml:"done"`

	// Selection
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.MergeFrom(*preset, false)
}

// MergeFrom copies colors from other. With override set, every non-empty
// value in other wins; otherwise only empty fields are filled.
func (c *ColorScheme) MergeFrom(other ColorScheme, override bool) {
	pick := func(dst *string, src string) {
		if src == "" {
			return
		}
		if override || *dst == "" {
			*dst = src
		}
	}

	pick(&c.Accent, other.Accent)
	pick(&c.Create, other.Create)
	pick(&c.Delete, other.Delete)
	pick(&c.Active, other.Active)
	pick(&c.Done, other.Done)
	pick(&c.SelectedBg, other.SelectedBg)
	pick(&c.Title, other.Title)
	pick(&c.Subtle, other.Subtle)
	pick(&c.Normal, other.Normal)
	pick(&c.ErrorFg, other.ErrorFg)
}
