// Package output renders aggregated time-log results as terminal text
// and as a static HTML report.
package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sharmaeklavya2/showmylog/pkg/parser"
)

// colorStyles maps color names to terminal styles. The empty name means
// uncolored output.
var colorStyles = map[string]lipgloss.Style{
	"red":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"green":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"yellow":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"blue":    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"magenta": lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"cyan":    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"white":   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

// KnownColor reports whether name is a supported terminal color name.
// The empty string is valid and means "no color".
func KnownColor(name string) bool {
	if name == "" {
		return true
	}
	_, ok := colorStyles[name]
	return ok
}

// DefaultTypeColors returns the default activity-type color table.
// Types not listed render uncolored.
func DefaultTypeColors() map[parser.ActivityType]string {
	return map[parser.ActivityType]string{
		parser.TypeGood: "green",
		parser.TypeBad:  "red",
		parser.TypeWarn: "yellow",
	}
}
