package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/doable/internal/config"
)

// Cached so they are not rebuilt on every redraw
var (
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	TabStyle       lipgloss.Style
	ActiveTabStyle lipgloss.Style
	TabGapStyle    lipgloss.Style

	TaskStyle         lipgloss.Style
	SelectedTaskStyle lipgloss.Style
	DoneTaskStyle     lipgloss.Style

	// Dialog boxes, colored by the kind of action
	CreateBoxStyle lipgloss.Style
	EditBoxStyle   lipgloss.Style
	DeleteBoxStyle lipgloss.Style
	HelpBoxStyle   lipgloss.Style

	TitleStyle  lipgloss.Style
	SubtleStyle lipgloss.Style
	InfoStyle   lipgloss.Style
	ErrorStyle  lipgloss.Style
)

// InitStyles builds every TUI style from the color scheme
func InitStyles(colors config.ColorScheme) {
	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(colors.Subtle)).
		Foreground(lipgloss.Color(colors.Normal)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.
		Border(activeTabBorder, true).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Foreground(lipgloss.Color(colors.Title)).
		Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	TaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Active)).
		PaddingLeft(1)

	SelectedTaskStyle = TaskStyle.
		Background(lipgloss.Color(colors.SelectedBg)).
		Bold(true)

	DoneTaskStyle = TaskStyle.
		Foreground(lipgloss.Color(colors.Done)).
		Strikethrough(true)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)
	CreateBoxStyle = box.BorderForeground(lipgloss.Color(colors.Create))
	EditBoxStyle = box.BorderForeground(lipgloss.Color(colors.Accent))
	DeleteBoxStyle = box.BorderForeground(lipgloss.Color(colors.Delete))
	HelpBoxStyle = box.BorderForeground(lipgloss.Color(colors.Accent))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))
}

// renderTabs renders the workspace tab bar filled to width
//
//	╭──────╮ ╭──────╮
//	│ Work │ │ Home │──────────────────────
func renderTabs(tabs []string, selectedIdx int, width int) string {
	rendered := make([]string, 0, len(tabs))
	for i, name := range tabs {
		if i == selectedIdx {
			rendered = append(rendered, ActiveTabStyle.Render(name))
		} else {
			rendered = append(rendered, TabStyle.Render(name))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	gapWidth := max(width-lipgloss.Width(row)-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
