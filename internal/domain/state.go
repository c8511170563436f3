package domain

// IntervalState is the state of a running interval.
type IntervalState string

const (
	IntervalStateRunning IntervalState = "running"
	IntervalStatePaused  IntervalState = "paused"
	IntervalStateQuit    IntervalState = "quit"
	IntervalStateDone    IntervalState = "done"
)

// IsTerminal returns true once the interval can no longer make progress.
func (s IntervalState) IsTerminal() bool {
	return s == IntervalStateQuit || s == IntervalStateDone
}

// GetIntervalKindLabel returns a human-readable label for the interval kind.
func GetIntervalKindLabel(k IntervalKind) string {
	switch k {
	case IntervalKindWork:
		return "Work"
	case IntervalKindShortRest:
		return "Short Rest"
	case IntervalKindLongRest:
		return "Long Rest"
	default:
		return "Unknown"
	}
}

// GetStateLabel returns a human-readable label for the interval state.
func GetStateLabel(s IntervalState) string {
	switch s {
	case IntervalStateRunning:
		return "Running"
	case IntervalStatePaused:
		return "Paused"
	case IntervalStateQuit:
		return "Quit"
	case IntervalStateDone:
		return "Done"
	default:
		return "Unknown"
	}
}
