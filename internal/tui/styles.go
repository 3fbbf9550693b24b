// Package tui provides the bubbletea + lipgloss terminal splash: a loading
// view that cross-fades into the landing content after a fixed hold.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared across both views.
var (
	colorWhite = lipgloss.Color("#FAFAFA")
	colorGray  = lipgloss.Color("#888888")
	colorDark  = lipgloss.Color("#444444")
	colorFaint = lipgloss.Color("#2A2A2A")
)

// fadeColors is the dim ramp used by the loading view's exit animation,
// indexed by fade step. Step 0 is full brightness.
var fadeColors = []lipgloss.Color{
	colorWhite,
	colorGray,
	colorDark,
	colorFaint,
}

// fadeColor returns the ramp color for a fade step, clamping past the end.
func fadeColor(step int) lipgloss.Color {
	if step < 0 {
		step = 0
	}
	if step >= len(fadeColors) {
		step = len(fadeColors) - 1
	}
	return fadeColors[step]
}
