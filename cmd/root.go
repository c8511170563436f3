// Package cmd provides the CLI commands for the Pomodoro application.
package cmd

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/adapters/terminal"
	"github.com/xvierd/pomodoro-cli/internal/adapters/tui"
	"github.com/xvierd/pomodoro-cli/internal/services"
)

// Exit codes.
const (
	exitError       = 1
	exitInterrupted = 130
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	cfgPath  string
	logFile  string
	logLevel string

	// Timer flags
	profile   string
	work      uint8
	shortRest uint8
	longRest  uint8
	noNotify  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Pomodoro - a terminal work/rest timer",
	Long: `Pomodoro runs an endless cycle of work and rest intervals in the terminal,
drawing each one as a colored progress bar and announcing every interval
with a desktop notification.

Keys: q quit, p pause, r resume, R refresh, h help.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = cleanupServices()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to the config file (default: ~/.pomodoro/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVar(&profile, "profile", "", "Name of the profile to announce at startup")
	rootCmd.Flags().Uint8Var(&work, "work", 25, "Work interval length in minutes")
	rootCmd.Flags().Uint8Var(&shortRest, "short-rest", 10, "Short rest length in minutes")
	rootCmd.Flags().Uint8Var(&longRest, "long-rest", 25, "Long rest length in minutes")
	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Pomodoro\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(gradientCmd)
	rootCmd.AddCommand(configCmd)
}

// runTimer takes over the terminal and runs intervals until the user quits.
func runTimer(cmd *cobra.Command, args []string) error {
	app.notifier = newNotifier(app.config, noNotify)

	// Raw mode has no CRLF translation, so stderr records are held until the
	// terminal is restored.
	logger, flushLogs := screenLogger(app.config, app.logger, cmd.ErrOrStderr())

	app.terminal = terminal.New(os.Stdin, cmd.OutOrStdout(), termenv.EnvColorProfile())
	if err := app.terminal.Start(); err != nil {
		return err
	}
	defer func() {
		if err := app.terminal.Close(); err != nil {
			app.logger.Warn("failed to restore terminal", "error", err)
		}
		if err := flushLogs(); err != nil {
			app.logger.Warn("failed to write held log records", "error", err)
		}
	}()

	ctx, stop := setupSignalHandler(app.terminal.Interrupt)
	defer stop()

	poller := services.NewPoller(terminal.NewKeyReader(os.Stdin), nil, logger)
	app.pomodoro = services.NewPomodoroService(app.terminal, poller, app.notifier, tui.NewStyles(app.terminal.Renderer()), logger)
	app.pomodoro.SetConfig(app.config.ToPomodoroDomainConfig())
	app.pomodoro.SetGradients(app.config.Gradients())
	poller.SetRefreshHook(app.pomodoro.ShowBanner)

	logger.Info("timer started", "work", app.config.Work, "short_rest", app.config.ShortRest, "long_rest", app.config.LongRest)
	if err := app.pomodoro.Run(ctx); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}
	return nil
}
