package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorDanger  = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorBorder  = lipgloss.Color("#4B5563")
)

// Styles groups the styles used by every view.
type Styles struct {
	Title   lipgloss.Style
	Bold    lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Info    lipgloss.Style
	Box     lipgloss.Style
	Bar     lipgloss.Style
}

// DefaultStyles returns the dashboard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Bold:    lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Success: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		Danger:  lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colorInfo),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Bar: lipgloss.NewStyle().Foreground(colorPrimary),
	}
}

// StatusBadge renders a program or payment status in its color.
func (s Styles) StatusBadge(status string) string {
	switch status {
	case "Active", "Paid":
		return s.Success.Render(status)
	case "Pending", "Partial":
		return s.Warning.Render(status)
	case "Ended", "Unpaid":
		return s.Muted.Render(status)
	default:
		return s.Danger.Render(status)
	}
}
