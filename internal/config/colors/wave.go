package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: palette.oniViolet,

		Create: palette.springGreen,
		Delete: palette.peachRed,

		Active: palette.fujiWhite,
		Done:   palette.waveAqua2,

		SelectedBg: palette.waveBlue1,

		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		ErrorFg: palette.samuraiRed,
	}
}
