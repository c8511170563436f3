// Package terminal owns the interactive terminal: raw mode, cursor control,
// in-place redraws and key input.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// errWriter latches the first write error; later writes are dropped.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Terminal is a handle on the screen and keyboard.
type Terminal struct {
	in       *os.File
	w        *errWriter
	out      *termenv.Output
	direct   *termenv.Output
	renderer *lipgloss.Renderer
	state    *term.State
}

// New creates a terminal writing to out with the given color profile. in may
// be nil when there is no keyboard.
func New(in *os.File, out io.Writer, profile termenv.Profile) *Terminal {
	w := &errWriter{w: out}
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)
	return &Terminal{
		in:       in,
		w:        w,
		out:      termenv.NewOutput(w, termenv.WithProfile(profile)),
		direct:   termenv.NewOutput(out, termenv.WithProfile(profile)),
		renderer: renderer,
	}
}

// Renderer returns the lipgloss renderer bound to this terminal.
func (t *Terminal) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// Err returns the first write error seen, if any.
func (t *Terminal) Err() error {
	if t.w.err != nil {
		return fmt.Errorf("terminal write: %w", t.w.err)
	}
	return nil
}

// Start switches the keyboard to raw mode when it is a terminal and hides
// the cursor.
func (t *Terminal) Start() error {
	if t.in != nil && term.IsTerminal(t.in.Fd()) {
		state, err := term.MakeRaw(t.in.Fd())
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		t.state = state
	}
	t.out.HideCursor()
	return t.Err()
}

// Close shows the cursor and restores the keyboard mode.
func (t *Terminal) Close() error {
	t.out.ShowCursor()
	if err := t.restore(); err != nil {
		return err
	}
	return t.Err()
}

func (t *Terminal) restore() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := term.Restore(t.in.Fd(), state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// Interrupt is the cleanup hook run from the signal handler goroutine just
// before the process exits. It is best effort: it writes straight to the
// underlying writer, bypassing the latched error, and may interleave with a
// concurrent redraw or Close. Errors are ignored.
func (t *Terminal) Interrupt() {
	_, _ = io.WriteString(t.direct, "\r")
	t.direct.ClearLineRight()
	t.direct.ShowCursor()
	_ = t.restore()
	_, _ = io.WriteString(t.direct, "\r\n")
}

// Redraw replaces the line above the cursor. The cursor is saved first and
// restored on every return path.
func (t *Terminal) Redraw(line string) (err error) {
	t.out.SaveCursorPosition()
	defer func() {
		t.out.RestoreCursorPosition()
		if err == nil {
			err = t.Err()
		}
	}()

	t.out.CursorUp(1)
	_, _ = io.WriteString(t.w, "\r")
	t.out.ClearLine()
	_, _ = io.WriteString(t.w, line)
	return t.Err()
}

// Reset clears the screen and homes the cursor.
func (t *Terminal) Reset() error {
	t.out.ClearScreen()
	return t.Err()
}

// Println writes s and a CRLF, which raw mode needs.
func (t *Terminal) Println(s string) error {
	_, _ = io.WriteString(t.w, s+"\r\n")
	return t.Err()
}

// Annotate writes msg on the line above the cursor from column onwards,
// clearing whatever was there, and leaves the cursor one line further down.
func (t *Terminal) Annotate(column int, msg string) error {
	t.out.CursorUp(1)
	_, _ = io.WriteString(t.w, "\r")
	if column > 0 {
		t.out.CursorForward(column)
	}
	t.out.ClearLineRight()
	_, _ = io.WriteString(t.w, msg+"\r\n\r\n")
	return t.Err()
}

var _ ports.Screen = (*Terminal)(nil)
