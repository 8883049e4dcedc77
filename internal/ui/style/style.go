// Package style provides the colours and symbols used in blackcheck output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
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

// Progress characters printed per unit in dots mode.
const (
	DotPassed  = "."
	DotFailed  = "F"
	DotSkipped = "s"
)
