package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadFiredMsg signals the one-shot loading hold timer has elapsed.
type loadFiredMsg struct{}

// fadeTickMsg advances the loading view's exit fade by one frame.
type fadeTickMsg struct{}

// revealTickMsg reveals the next content element in the stagger sequence.
type revealTickMsg struct{}

// loadTimerCmd schedules the one-shot loading hold timer.
func loadTimerCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return loadFiredMsg{}
	})
}

// fadeTickCmd schedules the next exit-fade frame.
func fadeTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return fadeTickMsg{}
	})
}

// revealTickCmd schedules the next staggered content reveal.
func revealTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return revealTickMsg{}
	})
}
