package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: palette.dragonViolet,

		Create: palette.dragonGreen2,
		Delete: palette.dragonRed,

		Active: palette.dragonWhite,
		Done:   palette.dragonAqua,

		SelectedBg: palette.dragonBlack4,

		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		ErrorFg: palette.samuraiRed,
	}
}
