package domain

import "time"

// EventKind tags a SessionEvent.
type EventKind int

const (
	// EventNull means nothing happened during the poll window.
	EventNull EventKind = iota
	EventQuit
	// EventResume ends a pause; Paused holds how long it lasted.
	EventResume
	EventRefresh
	EventHelp
)

// String returns the event label.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventResume:
		return "resume"
	case EventRefresh:
		return "refresh"
	case EventHelp:
		return "help"
	default:
		return "null"
	}
}

// SessionEvent is the outcome of one input poll.
type SessionEvent struct {
	Kind EventKind
	// Paused is only set for EventResume.
	Paused time.Duration
}

func NullEvent() SessionEvent    { return SessionEvent{Kind: EventNull} }
func QuitEvent() SessionEvent    { return SessionEvent{Kind: EventQuit} }
func RefreshEvent() SessionEvent { return SessionEvent{Kind: EventRefresh} }
func HelpEvent() SessionEvent    { return SessionEvent{Kind: EventHelp} }

// ResumeEvent ends a pause that lasted paused.
func ResumeEvent(paused time.Duration) SessionEvent {
	if paused < 0 {
		paused = 0
	}
	return SessionEvent{Kind: EventResume, Paused: paused}
}

// PauseSeconds returns the whole seconds spent paused.
func (e SessionEvent) PauseSeconds() int64 {
	return int64(e.Paused / time.Second)
}

// IsQuit returns true for EventQuit.
func (e SessionEvent) IsQuit() bool {
	return e.Kind == EventQuit
}
