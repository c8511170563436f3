package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/adapters/notification"
	"github.com/xvierd/pomodoro-cli/internal/adapters/terminal"
	"github.com/xvierd/pomodoro-cli/internal/config"
	"github.com/xvierd/pomodoro-cli/internal/services"
)

// appDeps groups the dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	logger   *slog.Logger
	logOut   io.Closer
	terminal *terminal.Terminal
	notifier *notification.Notifier
	pomodoro *services.PomodoroService
}

// app holds the initialized dependencies.
// Populated by initializeServices() and the timer command.
var app appDeps

// initializeServices loads the configuration and sets up logging.
func initializeServices(cmd *cobra.Command) error {
	path := cfgPath
	if cmd == configInitCmd {
		// init may be asked to create the file it is pointed at.
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	app.config = cfg

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	app.logger = logger
	app.logOut = closer
	return nil
}

// cleanupServices closes the log file.
func cleanupServices() error {
	if app.logOut == nil {
		return nil
	}
	err := app.logOut.Close()
	app.logOut = nil
	return err
}

// newNotifier creates the desktop notifier, switched off when disabled is set.
func newNotifier(cfg *config.Config, disabled bool) *notification.Notifier {
	n := notification.New(&cfg.Notifications)
	if disabled {
		n.SetEnabled(false)
	}
	return n
}

// consoleLevel raises level to WARN for output shared with the terminal.
func consoleLevel(level slog.Level) slog.Level {
	if level < slog.LevelWarn {
		return slog.LevelWarn
	}
	return level
}

// screenLogger returns the logger to use while the terminal is in raw mode.
// With a log file it is logger itself. Otherwise records are buffered and
// flush writes them to w once the screen has been handed back.
func screenLogger(cfg *config.Config, logger *slog.Logger, w io.Writer) (*slog.Logger, func() error) {
	if cfg.Log.File != "" {
		return logger, func() error { return nil }
	}

	level, err := cfg.LogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	held := &bytes.Buffer{}
	flush := func() error {
		_, err := held.WriteTo(w)
		return err
	}
	return slog.New(slog.NewTextHandler(held, &slog.HandlerOptions{Level: consoleLevel(level)})), flush
}

// newLogger builds a text logger on the configured log file. Without a file,
// only warnings and errors are written to stderr.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Log.File == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: consoleLevel(level)})), nil, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

// setupSignalHandler returns a context cancelled on interrupt signals. The
// cleanup hook runs before the process exits with status 130.
func setupSignalHandler(cleanup func()) (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			cancel()
			if cleanup != nil {
				cleanup()
			}
			_ = cleanupServices()
			os.Exit(exitInterrupted)
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
