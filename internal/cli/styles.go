// Package cli holds shared terminal styling for the reactive command.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("#5FAFFF")
	mutedColor  = lipgloss.Color("#888888")
	errorColor  = lipgloss.Color("#D70000")
)

var (
	// TitleStyle renders section headings.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// KeyStyle renders label halves of key-value pairs.
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// ValueStyle renders value halves of key-value pairs.
	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	// ErrorStyle renders error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)

// PrintKV writes one styled "key: value" line.
func PrintKV(key string, value any) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(fmt.Sprintf("%v", value)))
}

// PrintError writes a styled error message to stderr.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("error: ")+msg)
}
