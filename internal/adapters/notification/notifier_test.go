package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/pomodoro-cli/internal/config"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

type sent struct {
	title, message string
	icon           any
}

func recordingNotifier(cfg *config.NotificationConfig, err error) (*Notifier, *[]sent) {
	var calls []sent
	n := New(cfg)
	n.send = func(title, message string, icon any) error {
		calls = append(calls, sent{title, message, icon})
		return err
	}
	return n, &calls
}

func TestNotifyInterval(t *testing.T) {
	n, calls := recordingNotifier(&config.NotificationConfig{Enabled: true, Icon: "./pomodoro.png"}, nil)

	require.NoError(t, n.NotifyInterval(domain.IntervalKindWork))
	require.NoError(t, n.NotifyInterval(domain.IntervalKindShortRest))
	require.NoError(t, n.NotifyInterval(domain.IntervalKindLongRest))

	require.Len(t, *calls, 3)
	assert.Equal(t, sent{"Pomodoro notification", "We are now working", "./pomodoro.png"}, (*calls)[0])
	assert.Equal(t, "Let’s take a break.", (*calls)[1].message)
	assert.Equal(t, "Time for a long rest!", (*calls)[2].message)
}

func TestNotify_Disabled(t *testing.T) {
	n, calls := recordingNotifier(&config.NotificationConfig{Enabled: false}, nil)

	require.NoError(t, n.NotifyInterval(domain.IntervalKindWork))
	assert.Empty(t, *calls)
	assert.False(t, n.IsEnabled())

	n.SetEnabled(true)
	require.NoError(t, n.NotifyInterval(domain.IntervalKindWork))
	assert.Len(t, *calls, 1)
}

func TestNotify_NilConfig(t *testing.T) {
	n, calls := recordingNotifier(nil, nil)
	assert.NoError(t, n.Notify("hi"))
	assert.Empty(t, *calls)
}

func TestNotify_PropagatesError(t *testing.T) {
	boom := errors.New("no dbus")
	n, _ := recordingNotifier(&config.NotificationConfig{Enabled: true}, boom)
	assert.ErrorIs(t, n.NotifyInterval(domain.IntervalKindWork), boom)
}

func TestSetEnabled_LeavesConfigAlone(t *testing.T) {
	cfg := &config.NotificationConfig{Enabled: true}
	n, calls := recordingNotifier(cfg, nil)

	n.SetEnabled(false)
	require.NoError(t, n.NotifyInterval(domain.IntervalKindWork))
	assert.Empty(t, *calls)
	assert.True(t, cfg.Enabled)
}
