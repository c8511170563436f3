package domain

import (
	"fmt"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/gradient"
)

// IntervalKind represents the type of timed interval.
type IntervalKind string

const (
	IntervalKindWork      IntervalKind = "work"
	IntervalKindShortRest IntervalKind = "short_rest"
	IntervalKindLongRest  IntervalKind = "long_rest"
)

// CycleLength is the number of intervals before the pattern repeats.
const CycleLength = 8

// KindForCycle selects the interval kind for the i-th interval (1-based):
// every eighth is a long rest, every other even one a short rest, odd ones work.
func KindForCycle(i int) IntervalKind {
	switch {
	case i%CycleLength == 0:
		return IntervalKindLongRest
	case i%2 == 0:
		return IntervalKindShortRest
	default:
		return IntervalKindWork
	}
}

// IsRest returns true for short and long rests.
func (k IntervalKind) IsRest() bool {
	return k == IntervalKindShortRest || k == IntervalKindLongRest
}

// NotificationBody returns the desktop notification text fired when an
// interval of this kind starts.
func (k IntervalKind) NotificationBody() string {
	switch k {
	case IntervalKindShortRest:
		return "Let’s take a break."
	case IntervalKindLongRest:
		return "Time for a long rest!"
	default:
		return "We are now working"
	}
}

// PomodoroConfig holds interval durations.
type PomodoroConfig struct {
	Profile           string
	WorkDuration      time.Duration
	ShortRestDuration time.Duration
	LongRestDuration  time.Duration
}

// DefaultPomodoroConfig returns the default durations.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		WorkDuration:      25 * time.Minute,
		ShortRestDuration: 10 * time.Minute,
		LongRestDuration:  25 * time.Minute,
	}
}

// DurationFor returns the configured duration for an interval kind.
func (c PomodoroConfig) DurationFor(k IntervalKind) time.Duration {
	switch k {
	case IntervalKindShortRest:
		return c.ShortRestDuration
	case IntervalKindLongRest:
		return c.LongRestDuration
	default:
		return c.WorkDuration
	}
}

// Intro returns the line printed before the first interval.
func (c PomodoroConfig) Intro() string {
	if c.Profile != "" {
		return fmt.Sprintf("I’m going to work according to the '%s' profile.", c.Profile)
	}
	return fmt.Sprintf("I’m going to work %d minutes at a time, with normal rest periods of %d minutes and long ones of %d minutes.",
		int(c.WorkDuration.Minutes()),
		int(c.ShortRestDuration.Minutes()),
		int(c.LongRestDuration.Minutes()))
}

// Interval is a single work or rest period.
type Interval struct {
	ID       string
	Kind     IntervalKind
	Duration time.Duration
	Gradient gradient.Gradient
}

// NewInterval creates an interval with a fresh copy of g.
func NewInterval(kind IntervalKind, duration time.Duration, g gradient.Gradient) *Interval {
	return &Interval{
		ID:       generateID(),
		Kind:     kind,
		Duration: duration,
		Gradient: g.Fresh(),
	}
}

// CompletionMessage returns the text shown next to a finished interval's bar.
func (iv *Interval) CompletionMessage() string {
	minutes := int(iv.Duration.Minutes())
	if iv.Kind.IsRest() {
		return fmt.Sprintf("We rested for %d minutes, back to work!", minutes)
	}
	return fmt.Sprintf("We worked for %d minutes, let’s rest for a bit.", minutes)
}
