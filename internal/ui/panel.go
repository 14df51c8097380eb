package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
// Callers pass total > 0.
func ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, done*100/total)
}

// Panel frames content with the current theme's border.
// width <= 0 sizes the frame to the widest line.
func Panel(content string, width int) string {
	t := Current()
	st := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	if width > 0 {
		// Width includes padding but not the border.
		st = st.Width(width - 2)
	}
	return st.Render(content)
}
