package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShareBar splits width cells between part and the rest of total.
func ShareBar(part, total float64, width int) string {
	t := Current()
	if width < 5 {
		width = 5
	}
	if total <= 0 {
		return t.Muted.Render(strings.Repeat(t.BarEmpty, width))
	}
	filled := int(part / total * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	pct := int(part / total * 100)
	return fmt.Sprintf("%s%s %3d%%",
		t.Accent.Render(strings.Repeat(t.BarFull, filled)),
		t.Muted.Render(strings.Repeat(t.BarEmpty, width-filled)),
		pct)
}

// Box draws a framed block using the current theme.
func Box(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel renders lines inside a Box.
func Panel(lines []string) string {
	return Box(strings.Join(lines, "\n"))
}
