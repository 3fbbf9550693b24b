package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewTheme_DefaultAccent(t *testing.T) {
	th := NewTheme("")
	if th.accent != lipgloss.Color(defaultAccentColor) {
		t.Errorf("empty accent should fall back to %s, got %v", defaultAccentColor, th.accent)
	}
}

func TestNewTheme_CustomAccent(t *testing.T) {
	th := NewTheme("#FF6B6B")
	if th.accent != lipgloss.Color("#FF6B6B") {
		t.Errorf("accent = %v, want #FF6B6B", th.accent)
	}
	if got := th.BadgeStyle().GetForeground(); got != lipgloss.Color("#FF6B6B") {
		t.Errorf("badge foreground = %v, want accent", got)
	}
	if got := th.ButtonStyle().GetBackground(); got != lipgloss.Color("#FF6B6B") {
		t.Errorf("button background = %v, want accent", got)
	}
}

func TestSpinnerStyle_DimsWithFade(t *testing.T) {
	th := NewTheme("")
	bright := th.SpinnerStyle(0).GetForeground()
	dim := th.SpinnerStyle(fadeFrames - 1).GetForeground()
	if bright == dim {
		t.Error("spinner style should dim as the fade advances")
	}
}

func TestRingStyle_HasBorder(t *testing.T) {
	th := NewTheme("")
	if th.RingStyle(0).GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Error("outer ring should use a rounded border")
	}
}

func TestFadeColor_Clamps(t *testing.T) {
	if fadeColor(-1) != fadeColors[0] {
		t.Error("negative step should clamp to the first ramp color")
	}
	if fadeColor(99) != fadeColors[len(fadeColors)-1] {
		t.Error("overlarge step should clamp to the last ramp color")
	}
}
