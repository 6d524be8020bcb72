package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",
		Create: "#FFFFFF",
		Delete: "#FFFFFF",

		Active: "#D0D0D0",
		Done:   "#585858",

		SelectedBg: "#3A3A3A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		ErrorFg: "#FFFFFF",
	}
}
