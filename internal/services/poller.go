package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// PauseWait bounds a single wait for a key while paused. The pause loop
// simply waits again when it expires.
const PauseWait = 24 * time.Hour

// Poller classifies key presses into session events.
type Poller struct {
	keys      ports.KeySource
	onRefresh func() error
	logger    *slog.Logger
	now       func() time.Time
}

// NewPoller creates a poller reading from keys. onRefresh runs when the
// refresh key is pressed and may be nil.
func NewPoller(keys ports.KeySource, onRefresh func() error, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		keys:      keys,
		onRefresh: onRefresh,
		logger:    logger,
		now:       time.Now,
	}
}

// SetClock replaces the wall clock, for tests.
func (p *Poller) SetClock(now func() time.Time) {
	p.now = now
}

// SetRefreshHook sets the function run on the refresh key.
func (p *Poller) SetRefreshHook(fn func() error) {
	p.onRefresh = fn
}

// Poll waits up to timeout for a key. The pause key blocks inside Poll until
// the user resumes or quits; the time spent there is returned in the Resume
// event.
func (p *Poller) Poll(ctx context.Context, timeout time.Duration) (domain.SessionEvent, error) {
	key, ok, err := p.keys.ReadKey(ctx, timeout)
	if err != nil {
		return domain.NullEvent(), err
	}
	if !ok {
		return domain.NullEvent(), nil
	}

	switch key {
	case ports.KeyQuit, ports.KeyInterrupt:
		return domain.QuitEvent(), nil
	case ports.KeyPause:
		return p.waitForResume(ctx)
	case ports.KeyRefresh:
		if p.onRefresh != nil {
			if err := p.onRefresh(); err != nil {
				return domain.NullEvent(), fmt.Errorf("failed to refresh screen: %w", err)
			}
		}
		return domain.RefreshEvent(), nil
	case ports.KeyHelp, ports.KeyHelpAlt:
		return domain.HelpEvent(), nil
	default:
		return domain.NullEvent(), nil
	}
}

func (p *Poller) waitForResume(ctx context.Context) (domain.SessionEvent, error) {
	start := p.now()
	p.logger.Debug("interval paused", "state", domain.GetStateLabel(domain.IntervalStatePaused))

	for {
		key, ok, err := p.keys.ReadKey(ctx, PauseWait)
		if err != nil {
			return domain.NullEvent(), err
		}
		if !ok {
			continue
		}

		switch key {
		case ports.KeyResume:
			paused := p.now().Sub(start)
			p.logger.Debug("interval resumed", "state", domain.GetStateLabel(domain.IntervalStateRunning), "paused", paused)
			return domain.ResumeEvent(paused), nil
		case ports.KeyQuit, ports.KeyInterrupt:
			return domain.QuitEvent(), nil
		}
	}
}

var _ ports.EventSource = (*Poller)(nil)
