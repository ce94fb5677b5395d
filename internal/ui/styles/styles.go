// Package styles provides shared lipgloss styles for grm's output labels.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the output.
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent highlights the selected branch (pink)
	Accent = lipgloss.Color("212")

	// Muted is used for secondary text (gray)
	Muted = lipgloss.Color("240")
)

var (
	// Label styles the "origin:", "path:" and similar prefixes.
	Label = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// Highlight styles values the user chose between, like a matched branch.
	Highlight = lipgloss.NewStyle().Foreground(Accent)

	// Dim styles secondary values such as the local path.
	Dim = lipgloss.NewStyle().Foreground(Muted)
)

// RenderLabel returns name followed by a colon, styled as a label.
func RenderLabel(name string) string {
	return Label.Render(name + ":")
}
