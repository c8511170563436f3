package services

import (
	"context"
	"errors"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/domain"
)

var errScriptDone = errors.New("script exhausted")

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// keyStep is one ReadKey result. advance moves the clock before returning.
type keyStep struct {
	key     rune
	ok      bool
	advance time.Duration
	err     error
}

type scriptedKeys struct {
	clock    *fakeClock
	steps    []keyStep
	timeouts []time.Duration
}

func (k *scriptedKeys) ReadKey(ctx context.Context, timeout time.Duration) (rune, bool, error) {
	k.timeouts = append(k.timeouts, timeout)
	if len(k.steps) == 0 {
		return 0, false, errScriptDone
	}
	step := k.steps[0]
	k.steps = k.steps[1:]
	if k.clock != nil {
		k.clock.Advance(step.advance)
	}
	return step.key, step.ok, step.err
}

func press(key rune) keyStep {
	return keyStep{key: key, ok: true}
}

// eventScript answers the nth Poll (1-based) and advances the clock by the
// poll timeout plus any extra time returned by fn.
type eventScript struct {
	clock *fakeClock
	polls int
	fn    func(n int) (domain.SessionEvent, time.Duration, error)
}

func (e *eventScript) Poll(ctx context.Context, timeout time.Duration) (domain.SessionEvent, error) {
	e.polls++
	ev, extra, err := e.fn(e.polls)
	e.clock.Advance(timeout + extra)
	return ev, err
}

func quitAt(poll int) func(int) (domain.SessionEvent, time.Duration, error) {
	return func(n int) (domain.SessionEvent, time.Duration, error) {
		if n == poll {
			return domain.QuitEvent(), 0, nil
		}
		return domain.NullEvent(), 0, nil
	}
}

type annotation struct {
	column int
	msg    string
}

type recordingScreen struct {
	redraws     []string
	printed     []string
	annotations []annotation
	resets      int
	redrawErr   error
}

func (s *recordingScreen) Redraw(line string) error {
	if s.redrawErr != nil {
		return s.redrawErr
	}
	s.redraws = append(s.redraws, line)
	return nil
}

func (s *recordingScreen) Reset() error {
	s.resets++
	return nil
}

func (s *recordingScreen) Println(line string) error {
	s.printed = append(s.printed, line)
	return nil
}

func (s *recordingScreen) Annotate(column int, msg string) error {
	s.annotations = append(s.annotations, annotation{column: column, msg: msg})
	return nil
}

func (s *recordingScreen) lastRedraw() string {
	if len(s.redraws) == 0 {
		return ""
	}
	return s.redraws[len(s.redraws)-1]
}

type recordingNotifier struct {
	kinds []domain.IntervalKind
	err   error
}

func (n *recordingNotifier) NotifyInterval(kind domain.IntervalKind) error {
	n.kinds = append(n.kinds, kind)
	return n.err
}
