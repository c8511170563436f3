package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/adapters/tui"
	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/gradient"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// PomodoroService runs intervals and the work/rest cycle.
type PomodoroService struct {
	screen   ports.Screen
	events   ports.EventSource
	notifier ports.Notifier
	styles   *tui.Styles
	logger   *slog.Logger
	config   domain.PomodoroConfig
	work     gradient.Gradient
	rest     gradient.Gradient
	now      func() time.Time

	helpShown bool
}

// NewPomodoroService creates a new pomodoro service. notifier may be nil.
func NewPomodoroService(screen ports.Screen, events ports.EventSource, notifier ports.Notifier, styles *tui.Styles, logger *slog.Logger) *PomodoroService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PomodoroService{
		screen:   screen,
		events:   events,
		notifier: notifier,
		styles:   styles,
		logger:   logger,
		config:   domain.DefaultPomodoroConfig(),
		work:     gradient.New(gradient.Bounded(330, 120), gradient.Clockwise, domain.CellCount),
		rest:     gradient.New(gradient.Bounded(120, 330), gradient.CounterClockwise, domain.CellCount),
		now:      time.Now,
	}
}

// SetConfig updates the pomodoro configuration.
func (s *PomodoroService) SetConfig(config domain.PomodoroConfig) {
	s.config = config
}

// SetGradients sets the templates copied for work and rest intervals.
func (s *PomodoroService) SetGradients(work, rest gradient.Gradient) {
	s.work = work
	s.rest = rest
}

// SetClock replaces the wall clock, for tests.
func (s *PomodoroService) SetClock(now func() time.Time) {
	s.now = now
}

// ShowBanner clears the screen and prints the banner.
func (s *PomodoroService) ShowBanner() error {
	s.helpShown = false
	return s.printBanner(s.styles.Banner(s.config.Intro()))
}

// ShowHelp clears the screen and prints the banner with the key legend.
func (s *PomodoroService) ShowHelp() error {
	s.helpShown = true
	return s.printBanner(s.styles.HelpBanner())
}

// toggleHelp switches between the help legend and the normal banner.
func (s *PomodoroService) toggleHelp() error {
	if s.helpShown {
		return s.ShowBanner()
	}
	return s.ShowHelp()
}

func (s *PomodoroService) printBanner(lines []string) error {
	if err := s.screen.Reset(); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}
	for _, line := range lines {
		if err := s.screen.Println(line); err != nil {
			return fmt.Errorf("failed to print banner: %w", err)
		}
	}
	return nil
}

// NewInterval builds the interval for cycle position i.
func (s *PomodoroService) NewInterval(i int) *domain.Interval {
	kind := domain.KindForCycle(i)
	g := s.work
	if kind.IsRest() {
		g = s.rest
	}
	return domain.NewInterval(kind, s.config.DurationFor(kind), g)
}

// RunInterval drives one interval until its bar is full or the user quits.
// It returns a Quit event if interrupted and a Null event otherwise.
func (s *PomodoroService) RunInterval(ctx context.Context, interval *domain.Interval) (domain.SessionEvent, error) {
	logger := s.logger.With("interval_id", interval.ID, "kind", domain.GetIntervalKindLabel(interval.Kind))
	state := domain.IntervalStateRunning
	logger.Info("interval started", "duration", interval.Duration, "state", domain.GetStateLabel(state))

	bar := s.styles.NewProgressBar(interval.Gradient)
	start := s.now()
	var paused time.Duration

	for !state.IsTerminal() {
		event, err := s.events.Poll(ctx, domain.TickInterval)
		if err != nil {
			return domain.NullEvent(), err
		}

		switch event.Kind {
		case domain.EventQuit:
			state = domain.IntervalStateQuit
			logger.Info("interval stopped", "state", domain.GetStateLabel(state), "cells", bar.Cells())
			return event, nil
		case domain.EventResume:
			paused += event.Paused
			logger.Debug("pause accounted", "paused", event.Paused, "total_paused", paused)
			if s.helpShown {
				if err := s.ShowBanner(); err != nil {
					return domain.NullEvent(), err
				}
			}
		case domain.EventHelp:
			if err := s.toggleHelp(); err != nil {
				return domain.NullEvent(), err
			}
		}

		elapsed := s.now().Sub(start) - paused
		if err := s.screen.Redraw(bar.Update(elapsed, interval.Duration)); err != nil {
			return domain.NullEvent(), fmt.Errorf("failed to draw progress: %w", err)
		}
		if bar.Done() {
			state = domain.IntervalStateDone
		}
	}

	logger.Info("interval finished", "state", domain.GetStateLabel(state), "paused", paused)
	return domain.NullEvent(), nil
}

// Run cycles through intervals until the user quits or ctx is cancelled.
func (s *PomodoroService) Run(ctx context.Context) error {
	if err := s.ShowBanner(); err != nil {
		return err
	}

	for i := 1; ; i++ {
		interval := s.NewInterval(i)

		if s.notifier != nil {
			if err := s.notifier.NotifyInterval(interval.Kind); err != nil {
				s.logger.Warn("failed to show notification", "kind", interval.Kind, "error", err)
			}
		}

		event, err := s.RunInterval(ctx, interval)
		if err != nil {
			return err
		}

		if event.IsQuit() {
			if err := s.screen.Println(""); err != nil {
				return err
			}
			return s.screen.Println(s.styles.Farewell())
		}

		if err := s.screen.Annotate(tui.AnnotationColumn, interval.CompletionMessage()); err != nil {
			return fmt.Errorf("failed to print completion message: %w", err)
		}
	}
}
