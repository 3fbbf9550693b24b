package tui

import "testing"

func TestPhase_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseLoading, PhaseFading, true},
		{PhaseFading, PhaseReady, true},
		{PhaseLoading, PhaseReady, false}, // must pass through the fade
		{PhaseFading, PhaseLoading, false},
		{PhaseReady, PhaseLoading, false},
		{PhaseReady, PhaseFading, false},
		{PhaseLoading, PhaseLoading, false},
		{PhaseReady, PhaseReady, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%v → %v = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPhase_NoPathBackToLoading(t *testing.T) {
	for _, from := range []Phase{PhaseLoading, PhaseFading, PhaseReady} {
		if from != PhaseLoading && from.CanTransitionTo(PhaseLoading) {
			t.Errorf("%v should never transition back to loading", from)
		}
	}
}

func TestPhase_Loading(t *testing.T) {
	if !PhaseLoading.Loading() {
		t.Error("PhaseLoading should report loading")
	}
	if !PhaseFading.Loading() {
		t.Error("PhaseFading should report loading")
	}
	if PhaseReady.Loading() {
		t.Error("PhaseReady should not report loading")
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		p    Phase
		want string
	}{
		{PhaseLoading, "loading"},
		{PhaseFading, "fading"},
		{PhaseReady, "ready"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}
