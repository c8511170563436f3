// Package notification provides desktop notification utilities.
package notification

import (
	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomodoro-cli/internal/config"
	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

const (
	// Title is the summary line of every notification.
	Title = "Pomodoro notification"
	// AppName is reported to the notification daemon.
	AppName = "Pomodoro"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg  *config.NotificationConfig
	send func(title, message string, icon any) error
}

// New creates a new notifier with a copy of the given configuration. A nil
// configuration leaves notifications off.
func New(cfg *config.NotificationConfig) *Notifier {
	beeep.AppName = AppName
	n := &Notifier{send: beeep.Notify}
	if cfg != nil {
		c := *cfg
		n.cfg = &c
	}
	return n
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return n.send(Title, message, n.cfg.Icon)
}

// NotifyInterval announces the start of an interval.
func (n *Notifier) NotifyInterval(kind domain.IntervalKind) error {
	return n.Notify(kind.NotificationBody())
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

// SetEnabled toggles notifications at runtime.
func (n *Notifier) SetEnabled(enabled bool) {
	if n.cfg == nil {
		n.cfg = &config.NotificationConfig{}
	}
	n.cfg.Enabled = enabled
}

var _ ports.Notifier = (*Notifier)(nil)
