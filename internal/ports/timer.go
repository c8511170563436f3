package ports

import (
	"context"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// Screen is the terminal the timer draws on.
// This is a driven port (called by the application layer).
type Screen interface {
	// Redraw replaces the line above the cursor with line. The cursor
	// position is restored before Redraw returns, on every path.
	Redraw(line string) error

	// Reset clears the whole screen and homes the cursor.
	Reset() error

	// Println writes s followed by a line break.
	Println(s string) error

	// Annotate writes msg on the line above the cursor starting at column,
	// then moves the cursor to a fresh line below it.
	Annotate(column int, msg string) error
}

// KeySource delivers single key presses.
// This is a driven port (called by the application layer).
type KeySource interface {
	// ReadKey waits up to timeout for a key. ok is false if none arrived.
	ReadKey(ctx context.Context, timeout time.Duration) (key rune, ok bool, err error)
}

// EventSource turns user input into session events.
type EventSource interface {
	// Poll waits up to timeout for input and classifies it.
	Poll(ctx context.Context, timeout time.Duration) (domain.SessionEvent, error)
}

// Key bindings recognised while an interval runs.
const (
	KeyQuit    rune = 'q'
	KeyPause   rune = 'p'
	KeyResume  rune = 'r'
	KeyRefresh rune = 'R'
	KeyHelp    rune = 'h'
	KeyHelpAlt rune = '?'
	// KeyInterrupt is Ctrl-C as delivered in raw mode.
	KeyInterrupt rune = 0x03
)
