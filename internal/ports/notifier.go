package ports

import "github.com/xvierd/pomodoro-cli/internal/domain"

// Notifier announces interval changes outside the terminal.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyInterval announces that an interval of the given kind starts.
	NotifyInterval(kind domain.IntervalKind) error
}
