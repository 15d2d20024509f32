// Package style provides the terminal styles for appalias output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Base styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

var enabled = true

// Init enables or disables styling. mode is "auto", "always" or "never";
// auto styles only when stdout is a terminal.
func Init(mode string) {
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	default:
		enabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// Render applies s to text when styling is enabled
func Render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success renders text in the success style
func Success(text string) string { return Render(SuccessStyle, text) }

// Error renders text in the error style
func Error(text string) string { return Render(ErrorStyle, text) }

// Path renders text in the path style
func Path(text string) string { return Render(PathStyle, text) }

// Muted renders text in the muted style
func Muted(text string) string { return Render(MutedStyle, text) }
