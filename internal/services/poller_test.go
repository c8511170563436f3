package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

func TestPoller_Poll(t *testing.T) {
	tests := []struct {
		name string
		step keyStep
		want domain.EventKind
	}{
		{"timeout", keyStep{}, domain.EventNull},
		{"quit", press(ports.KeyQuit), domain.EventQuit},
		{"ctrl-c", press(ports.KeyInterrupt), domain.EventQuit},
		{"resume outside pause", press(ports.KeyResume), domain.EventNull},
		{"refresh", press(ports.KeyRefresh), domain.EventRefresh},
		{"help", press(ports.KeyHelp), domain.EventHelp},
		{"help alt", press(ports.KeyHelpAlt), domain.EventHelp},
		{"other key", press('x'), domain.EventNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := &scriptedKeys{steps: []keyStep{tt.step}}
			poller := NewPoller(keys, nil, nil)

			ev, err := poller.Poll(context.Background(), domain.TickInterval)
			if err != nil {
				t.Fatalf("Poll() error = %v", err)
			}
			if ev.Kind != tt.want {
				t.Errorf("Poll() kind = %v, want %v", ev.Kind, tt.want)
			}
			if keys.timeouts[0] != domain.TickInterval {
				t.Errorf("ReadKey() timeout = %v, want %v", keys.timeouts[0], domain.TickInterval)
			}
		})
	}
}

func TestPoller_PauseAndResume(t *testing.T) {
	clock := newFakeClock()
	clock.Advance(5 * time.Second)
	keys := &scriptedKeys{
		clock: clock,
		steps: []keyStep{
			press(ports.KeyPause),
			{advance: 4 * time.Second},
			{key: 'x', ok: true, advance: 2 * time.Second},
			{key: ports.KeyRefresh, ok: true},
			{key: ports.KeyResume, ok: true, advance: 4 * time.Second},
		},
	}
	refreshed := false
	poller := NewPoller(keys, func() error { refreshed = true; return nil }, nil)
	poller.SetClock(clock.Now)

	ev, err := poller.Poll(context.Background(), domain.TickInterval)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if ev.Kind != domain.EventResume {
		t.Fatalf("Poll() kind = %v, want resume", ev.Kind)
	}
	if ev.Paused != 10*time.Second {
		t.Errorf("Poll() paused = %v, want 10s", ev.Paused)
	}
	if ev.PauseSeconds() != 10 {
		t.Errorf("PauseSeconds() = %d, want 10", ev.PauseSeconds())
	}
	if refreshed {
		t.Error("refresh key should be ignored while paused")
	}
	for _, timeout := range keys.timeouts[1:] {
		if timeout != PauseWait {
			t.Errorf("pause wait timeout = %v, want %v", timeout, PauseWait)
		}
	}
}

func TestPoller_QuitWhilePaused(t *testing.T) {
	keys := &scriptedKeys{steps: []keyStep{press(ports.KeyPause), press(ports.KeyQuit)}}
	poller := NewPoller(keys, nil, nil)

	ev, err := poller.Poll(context.Background(), domain.TickInterval)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if !ev.IsQuit() {
		t.Errorf("Poll() kind = %v, want quit", ev.Kind)
	}
}

func TestPoller_Refresh(t *testing.T) {
	t.Run("runs hook", func(t *testing.T) {
		calls := 0
		keys := &scriptedKeys{steps: []keyStep{press(ports.KeyRefresh)}}
		poller := NewPoller(keys, nil, nil)
		poller.SetRefreshHook(func() error { calls++; return nil })

		if _, err := poller.Poll(context.Background(), domain.TickInterval); err != nil {
			t.Fatalf("Poll() error = %v", err)
		}
		if calls != 1 {
			t.Errorf("refresh hook calls = %d, want 1", calls)
		}
	})

	t.Run("hook error", func(t *testing.T) {
		boom := errors.New("boom")
		keys := &scriptedKeys{steps: []keyStep{press(ports.KeyRefresh)}}
		poller := NewPoller(keys, func() error { return boom }, nil)

		_, err := poller.Poll(context.Background(), domain.TickInterval)
		if !errors.Is(err, boom) {
			t.Errorf("Poll() error = %v, want %v", err, boom)
		}
	})
}

func TestPoller_ReadError(t *testing.T) {
	keys := &scriptedKeys{steps: []keyStep{{err: context.Canceled}}}
	poller := NewPoller(keys, nil, nil)

	_, err := poller.Poll(context.Background(), domain.TickInterval)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Poll() error = %v, want context.Canceled", err)
	}

	keys = &scriptedKeys{steps: []keyStep{press(ports.KeyPause), {err: context.Canceled}}}
	poller = NewPoller(keys, nil, nil)
	if _, err := poller.Poll(context.Background(), domain.TickInterval); !errors.Is(err, context.Canceled) {
		t.Errorf("Poll() while paused error = %v, want context.Canceled", err)
	}
}
