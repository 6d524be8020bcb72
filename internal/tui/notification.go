package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Error
)

type notification struct {
	severity Severity
	message  string
}

func (m *Model) notifyInfo(message string) {
	m.notification = notification{severity: Info, message: message}
}

func (m *Model) notifyError(err error) {
	m.notification = notification{severity: Error, message: err.Error()}
}

func (m *Model) clearNotification() {
	m.notification = notification{}
}

// Notification returns the message currently shown in the status line
func (m Model) Notification() string {
	return m.notification.message
}

// renderInline renders a compact one-line notification
func (n notification) renderInline() string {
	if n.message == "" {
		return ""
	}
	style := InfoStyle
	icon := "ℹ"
	if n.severity == Error {
		style = ErrorStyle
		icon = "✗"
	}
	return style.Render(icon + " " + n.message)
}

// statusLine joins the notification (left) and help hint (right)
func statusLine(n notification, width int) string {
	left := n.renderInline()
	right := SubtleStyle.Render("press ? for help")

	gapWidth := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gapWidth) + right
}
