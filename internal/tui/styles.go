package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// styleSet holds the lipgloss styles derived from one theme.
type styleSet struct {
	header    lipgloss.Style
	chrome    lipgloss.Style
	prompt    lipgloss.Style
	response  lipgloss.Style
	caret     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	badge     lipgloss.Style
	badgeOff  lipgloss.Style
	hovered   lipgloss.Style
	help      lipgloss.Style
	separator lipgloss.Style
}

func newStyleSet(t Theme) styleSet {
	return styleSet{
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).MarginBottom(1),
		chrome: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		prompt: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		response: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Secondary).
			Padding(1, 2),
		caret:     lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		label:     lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:     lipgloss.NewStyle().Foreground(t.Text),
		badge:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		badgeOff:  lipgloss.NewStyle().Foreground(t.Muted),
		hovered:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		help:      lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		separator: lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// progressBar renders a filled bar for the reveal fraction.
func progressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// sparkline renders the reveal-progress history as a mini chart.
func sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		v := values[i*step]
		idx := int(v * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

// titledRule draws a horizontal rule with an embedded title, sized by
// display width rather than byte length.
func titledRule(title string, width int) string {
	tw := runewidth.StringWidth(title)
	if tw+4 >= width {
		return title
	}
	right := width - tw - 4
	return "─ " + title + " " + strings.Repeat("─", right)
}
