// Package panels provides the pure render functions for the splash views.
// Styles arrive as explicit parameters so the package never imports the
// parent tui package.
package panels

import (
	"github.com/charmbracelet/lipgloss"
)

// LoadingLabel is the status text always rendered with the spinner. It is
// the terminal stand-in for the original page's live-region semantics.
const LoadingLabel = "LOADING"

// LoadingProps holds all data needed to render the loading view.
type LoadingProps struct {
	Frame string // current inner-ring spinner frame
	Label string // status label; empty falls back to LoadingLabel
}

// LoadingStyles holds the styles for the loading view's parts.
type LoadingStyles struct {
	Ring    lipgloss.Style // static outer ring (border)
	Spinner lipgloss.Style // rotating inner ring glyph
	Label   lipgloss.Style
}

// RenderLoading renders the centered spinner: a static outer ring around the
// rotating inner ring frame, with the status label beneath.
func RenderLoading(props LoadingProps, width, height int, styles LoadingStyles) string {
	label := props.Label
	if label == "" {
		label = LoadingLabel
	}

	ring := styles.Ring.Render(styles.Spinner.Render(props.Frame))
	block := lipgloss.JoinVertical(lipgloss.Center,
		ring,
		"",
		styles.Label.Render(label),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
