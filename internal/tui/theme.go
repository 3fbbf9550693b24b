package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds accent-color-derived styles for the splash. The fade ramp and
// base palette are package-level in styles.go.
type Theme struct {
	accent lipgloss.Color

	badgeStyle   lipgloss.Style // status badge pill above the heading
	headingStyle lipgloss.Style
	subtextStyle lipgloss.Style
	buttonStyle  lipgloss.Style // external link rendered as a button
	footerStyle  lipgloss.Style
	labelStyle   lipgloss.Style // loading status label
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accent: c,
		badgeStyle: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		headingStyle: lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true),
		subtextStyle: lipgloss.NewStyle().
			Foreground(colorGray),
		buttonStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2),
		footerStyle: lipgloss.NewStyle().
			Foreground(colorGray),
		labelStyle: lipgloss.NewStyle().
			Foreground(colorGray).
			Bold(true),
	}
}

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

// BadgeStyle returns the style for the status badge.
func (t Theme) BadgeStyle() lipgloss.Style { return t.badgeStyle }

// HeadingStyle returns the style for the main heading.
func (t Theme) HeadingStyle() lipgloss.Style { return t.headingStyle }

// SubtextStyle returns the style for the paragraph under the heading.
func (t Theme) SubtextStyle() lipgloss.Style { return t.subtextStyle }

// ButtonStyle returns the style for the external link button.
func (t Theme) ButtonStyle() lipgloss.Style { return t.buttonStyle }

// FooterStyle returns the style for the copyright footer.
func (t Theme) FooterStyle() lipgloss.Style { return t.footerStyle }

// LabelStyle returns the style for the loading status label.
func (t Theme) LabelStyle() lipgloss.Style { return t.labelStyle }

// SpinnerStyle returns the style for the rotating inner ring at the given
// fade step (0 = full brightness, higher = dimmer).
func (t Theme) SpinnerStyle(fadeStep int) lipgloss.Style {
	if fadeStep == 0 {
		return lipgloss.NewStyle().Foreground(t.accent)
	}
	return lipgloss.NewStyle().Foreground(fadeColor(fadeStep))
}

// RingStyle returns the style for the static outer ring at the given fade
// step.
func (t Theme) RingStyle(fadeStep int) lipgloss.Style {
	base := colorGray
	if fadeStep > 0 {
		base = fadeColor(fadeStep)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(base).
		Padding(0, 1)
}

// FadedLabelStyle returns the loading label style at the given fade step.
func (t Theme) FadedLabelStyle(fadeStep int) lipgloss.Style {
	if fadeStep == 0 {
		return t.labelStyle
	}
	return lipgloss.NewStyle().Foreground(fadeColor(fadeStep)).Bold(true)
}
