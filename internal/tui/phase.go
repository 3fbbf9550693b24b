package tui

// Phase represents the current state of the splash. The sequence is strictly
// one-way: loading holds for a fixed duration, fading plays the exit
// animation, ready shows the landing content until quit.
type Phase int

const (
	PhaseLoading Phase = iota // Loading view displayed
	PhaseFading               // Loading view fading out
	PhaseReady                // Content view displayed
)

// validTransitions defines the allowed Phase transitions. There is no path
// back to PhaseLoading.
var validTransitions = map[Phase][]Phase{
	PhaseLoading: {PhaseFading},
	PhaseFading:  {PhaseReady},
	PhaseReady:   {},
}

// CanTransitionTo reports whether transitioning from p to next is valid.
func (p Phase) CanTransitionTo(next Phase) bool {
	for _, valid := range validTransitions[p] {
		if valid == next {
			return true
		}
	}
	return false
}

// Loading reports whether the loading view (or its exit fade) is displayed.
func (p Phase) Loading() bool {
	return p != PhaseReady
}

// String returns the human-readable name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFading:
		return "fading"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}
