package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#8B5CF6")
	successColor   = lipgloss.Color("#34D399")
	warningColor   = lipgloss.Color("#FBBF24")
	mutedColor     = lipgloss.Color("#9CA3AF")
	highlightColor = lipgloss.Color("#60A5FA")

	accentColor  = lipgloss.Color("#A78BFA")
	surfaceColor = lipgloss.Color("#1F2937")
	borderColor  = lipgloss.Color("#374151")
	textColor    = lipgloss.Color("#F3F4F6")
	subtleColor  = lipgloss.Color("#6B7280")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true).
			MarginLeft(2)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Border plus one column of padding on each side; see constants.CellChromeWidth.
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Foreground(textColor).
			Padding(0, 1)

	focusedCellStyle = cellStyle.
				BorderForeground(highlightColor)

	tooltipStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Background(surfaceColor).
			Foreground(textColor).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	logLineStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1)
)

const (
	iconFits      = "●"
	iconTruncated = "◐"
	iconEmpty     = "○"
)

func statusIcon(visible, hidden int) string {
	switch {
	case hidden == 0 && visible > 0:
		return successStyle.Render(iconFits)
	case hidden > 0:
		return warningStyle.Render(iconTruncated)
	default:
		return pendingStyle.Render(iconEmpty)
	}
}
