package styles

import (
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/doable/internal/config"
	"github.com/thenoetrevino/doable/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Created:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	ActiveStyle  lipgloss.Style
	DoneStyle    lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	ActiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Active))

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Done)).
		Strikethrough(true)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// Checkbox renders the status marker used in task lists
func Checkbox(status models.TaskStatus) string {
	if status == models.TaskStatusDone {
		return DoneStyle.Strikethrough(false).Render("[x]")
	}
	return ActiveStyle.Render("[ ]")
}

// RenderTaskLine renders "[ ] #12 text" with the status color
func RenderTaskLine(task *models.Task) string {
	text := ActiveStyle.Render(task.Text)
	if task.IsDone() {
		text = DoneStyle.Render(task.Text)
	}
	return Checkbox(task.Status) + " " + SubtitleStyle.Render("#"+strconv.Itoa(task.ID)) + " " + text
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
