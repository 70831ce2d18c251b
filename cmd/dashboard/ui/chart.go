package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one labelled value in a BarChart.
type Bar struct {
	Label string
	Value float64
}

// BarChart renders horizontal bars scaled to the largest value.
type BarChart struct {
	Title string
	Bars  []Bar
	Width int
	// FormatValue renders the value printed after each bar.
	FormatValue func(float64) string
}

// View renders the chart.
func (c *BarChart) View(styles Styles) string {
	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(styles.Title.Render(c.Title))
		sb.WriteString("\n")
	}

	width := c.Width
	if width <= 0 {
		width = 40
	}

	labelWidth := 0
	peak := 0.0
	for _, b := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		peak = max(peak, b.Value)
	}

	label := styles.Body.Width(labelWidth + 1)
	for _, b := range c.Bars {
		n := 0
		if peak > 0 && b.Value > 0 {
			n = max(1, int(b.Value/peak*float64(width)))
		}
		sb.WriteString(label.Render(b.Label))
		sb.WriteString(styles.Bar.Render(strings.Repeat("█", n)))
		if c.FormatValue != nil {
			sb.WriteString(" ")
			sb.WriteString(styles.Muted.Render(c.FormatValue(b.Value)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ProgressBar renders pct (0..100, clamped for drawing) as a fixed-width bar.
func ProgressBar(styles Styles, pct float64, width int) string {
	filled := int(min(max(pct, 0), 100) / 100 * float64(width))
	return styles.Bar.Render(strings.Repeat("█", filled)) +
		styles.Muted.Render(strings.Repeat("░", width-filled))
}
