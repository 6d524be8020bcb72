package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: palette.lotusViolet4,

		Create: palette.lotusGreen,
		Delete: palette.lotusRed,

		Active: palette.lotusInk1,
		Done:   palette.lotusAqua,

		SelectedBg: palette.lotusWhite3,

		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		ErrorFg: palette.lotusRed,
	}
}
