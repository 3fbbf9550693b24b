package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/teamssUTXO/comingsoon/internal/config"
	"github.com/teamssUTXO/comingsoon/internal/page"
	"github.com/teamssUTXO/comingsoon/internal/tui/panels"
)

// fadeFrames is the number of dim steps in the loading view's exit fade.
const fadeFrames = 4

// ringFrames is the rotating inner ring. Ten frames at 100ms each make one
// full revolution per second.
var ringFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the root bubbletea model for the splash. It owns the one-way
// loading → fading → ready phase machine; exactly one view renders at a
// time, chosen by phase.
type Model struct {
	// Timing (from config, milliseconds already converted)
	loadingHold  time.Duration
	fadeStepWait time.Duration
	initialDelay time.Duration
	stagger      time.Duration

	// Views
	spinner  spinner.Model
	theme    Theme
	layout   Layout
	width    int
	height   int
	fadeStep int
	revealed int

	// Phase machine
	phase Phase

	// Document side effect, applied once on content mount
	doc         *page.Document
	metaApplied bool

	logger zerolog.Logger

	done bool
}

// New creates the splash Model. doc receives the title/description metadata
// side effect when the content view mounts; it must not be nil.
func New(cfg *config.Config, doc *page.Document, logger zerolog.Logger) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Spinner{
		Frames: ringFrames,
		FPS:    time.Second / time.Duration(len(ringFrames)),
	}))

	fadeWait := time.Duration(cfg.Splash.FadeMs) * time.Millisecond / fadeFrames

	return Model{
		loadingHold:  time.Duration(cfg.Splash.LoadingMs) * time.Millisecond,
		fadeStepWait: fadeWait,
		initialDelay: time.Duration(cfg.Splash.InitialDelayMs) * time.Millisecond,
		stagger:      time.Duration(cfg.Splash.StaggerMs) * time.Millisecond,
		spinner:      sp,
		theme:        NewTheme(cfg.TUI.AccentColor),
		layout:       Calculate(80, 24),
		width:        80,
		height:       24,
		phase:        PhaseLoading,
		doc:          doc,
		logger:       logger,
	}
}

// Phase returns the current splash phase.
func (m Model) Phase() Phase { return m.phase }

// Loading reports whether the loading view (or its exit fade) is shown.
func (m Model) Loading() bool { return m.phase.Loading() }

// Init returns the initial commands: spinner animation plus the one-shot
// loading hold timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadTimerCmd(m.loadingHold))
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = Calculate(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.done = true
			m.logger.Info().Str("phase", m.phase.String()).Msg("splash closed")
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		// The inner ring spins only while the loading view is mounted.
		if m.done || !m.phase.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadFiredMsg:
		return m.handleLoadFired()

	case fadeTickMsg:
		return m.handleFadeTick()

	case revealTickMsg:
		return m.handleRevealTick()
	}
	return m, nil
}

// handleLoadFired starts the exit fade. The timer is one-shot; a message
// arriving after teardown or out of phase changes nothing.
func (m Model) handleLoadFired() (tea.Model, tea.Cmd) {
	if m.done || !m.phase.CanTransitionTo(PhaseFading) {
		return m, nil
	}
	m.phase = PhaseFading
	m.logger.Info().Str("phase", m.phase.String()).Msg("loading hold elapsed")
	if m.fadeStepWait <= 0 {
		return m.mountContent()
	}
	return m, fadeTickCmd(m.fadeStepWait)
}

// handleFadeTick advances the exit fade one frame and mounts the content
// view when the fade completes.
func (m Model) handleFadeTick() (tea.Model, tea.Cmd) {
	if m.done || m.phase != PhaseFading {
		return m, nil
	}
	m.fadeStep++
	if m.fadeStep >= fadeFrames {
		return m.mountContent()
	}
	return m, fadeTickCmd(m.fadeStepWait)
}

// mountContent transitions to the ready phase, applies the document
// metadata side effect once, and kicks off the staggered reveal.
func (m Model) mountContent() (tea.Model, tea.Cmd) {
	if !m.phase.CanTransitionTo(PhaseReady) {
		return m, nil
	}
	m.phase = PhaseReady

	if !m.metaApplied {
		page.ApplyMetadata(m.doc)
		m.metaApplied = true
		m.logger.Info().Str("title", m.doc.Title()).Msg("document metadata applied")
	}

	return m, tea.Batch(
		tea.SetWindowTitle(m.doc.Title()),
		revealTickCmd(m.initialDelay),
	)
}

// handleRevealTick reveals the next content element until all are visible.
func (m Model) handleRevealTick() (tea.Model, tea.Cmd) {
	if m.done || m.phase != PhaseReady {
		return m, nil
	}
	if m.revealed >= panels.ElementCount {
		return m, nil
	}
	m.revealed++
	if m.revealed < panels.ElementCount {
		return m, revealTickCmd(m.stagger)
	}
	return m, nil
}
