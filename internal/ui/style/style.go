// Package style provides shared UI styling primitives: colors, icons and the
// mapping from process states to colors.
package style

import (
	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/charmbracelet/lipgloss"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// ForStatus returns the color of a status line.
func ForStatus(st domain.ProcessStatus) lipgloss.Color {
	switch st.State {
	case domain.StateExited:
		if st.Success() {
			return Green
		}
		return Red
	case domain.StateSignaled:
		return Red
	case domain.StateStopped:
		return Yellow
	default:
		return Slate
	}
}
