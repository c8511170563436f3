package domain

import (
	"testing"
	"time"
)

func TestIntervalState_IsTerminal(t *testing.T) {
	tests := []struct {
		state IntervalState
		want  bool
	}{
		{IntervalStateRunning, false},
		{IntervalStatePaused, false},
		{IntervalStateQuit, true},
		{IntervalStateDone, true},
	}

	for _, tt := range tests {
		if got := tt.state.IsTerminal(); got != tt.want {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestGetIntervalKindLabel(t *testing.T) {
	if got := GetIntervalKindLabel(IntervalKindShortRest); got != "Short Rest" {
		t.Errorf("GetIntervalKindLabel(short_rest) = %q", got)
	}
	if got := GetIntervalKindLabel("bogus"); got != "Unknown" {
		t.Errorf("GetIntervalKindLabel(bogus) = %q", got)
	}
}

func TestGetStateLabel(t *testing.T) {
	if got := GetStateLabel(IntervalStatePaused); got != "Paused" {
		t.Errorf("GetStateLabel(paused) = %q", got)
	}
}

func TestResumeEvent(t *testing.T) {
	e := ResumeEvent(10 * time.Second)
	if e.Kind != EventResume {
		t.Errorf("Kind = %v, want resume", e.Kind)
	}
	if e.PauseSeconds() != 10 {
		t.Errorf("PauseSeconds() = %d, want 10", e.PauseSeconds())
	}

	if got := ResumeEvent(-time.Second).Paused; got != 0 {
		t.Errorf("negative pause should clamp to 0, got %v", got)
	}
}

func TestSessionEvent_IsQuit(t *testing.T) {
	if !QuitEvent().IsQuit() {
		t.Error("QuitEvent().IsQuit() = false")
	}
	if NullEvent().IsQuit() || RefreshEvent().IsQuit() || HelpEvent().IsQuit() {
		t.Error("only quit events should report IsQuit")
	}
}

func TestFilledCells(t *testing.T) {
	total := 1500 * time.Second

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"start", 0, 0},
		{"negative", -time.Second, 0},
		{"halfway", 750 * time.Second, 50},
		{"one percent", 15 * time.Second, 1},
		{"just under", 1499 * time.Second, 99},
		{"done", total, CellCount},
		{"overrun", 2 * total, CellCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilledCells(tt.elapsed, total); got != tt.want {
				t.Errorf("FilledCells(%v) = %d, want %d", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestFilledCells_Monotonic(t *testing.T) {
	total := 90 * time.Second
	prev := 0
	for elapsed := time.Duration(0); elapsed <= total+time.Second; elapsed += 50 * time.Millisecond {
		got := FilledCells(elapsed, total)
		if got < prev {
			t.Fatalf("FilledCells(%v) = %d, decreased from %d", elapsed, got, prev)
		}
		prev = got
	}
	if prev != CellCount {
		t.Errorf("final cell count = %d, want %d", prev, CellCount)
	}
}

func TestFilledCells_ZeroTotal(t *testing.T) {
	if got := FilledCells(0, 0); got != CellCount {
		t.Errorf("FilledCells(0, 0) = %d, want %d", got, CellCount)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "(00:00)"},
		{59*time.Second + 900*time.Millisecond, "(00:59)"},
		{754 * time.Second, "(12:34)"},
		{100 * time.Minute, "(100:00)"},
		{-time.Second, "(00:00)"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
