// Package config provides configuration management for Pomodoro.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/gradient"
)

// EnvPrefix is the prefix for environment overrides, e.g. POMODORO_WORK.
const EnvPrefix = "POMODORO"

// Interval lengths are whole minutes in [MinMinutes, MaxMinutes]. They are
// decoded as int so out-of-range values fail validation instead of wrapping.
const (
	MinMinutes = 1
	MaxMinutes = 255
)

// Config holds all configuration for the Pomodoro application.
type Config struct {
	Profile       string             `mapstructure:"profile" toml:"profile"`
	Work          int                `mapstructure:"work" toml:"work"`
	ShortRest     int                `mapstructure:"short_rest" toml:"short_rest"`
	LongRest      int                `mapstructure:"long_rest" toml:"long_rest"`
	Notifications NotificationConfig `mapstructure:"notifications" toml:"notifications"`
	Gradient      GradientConfig     `mapstructure:"gradient" toml:"gradient"`
	Log           LogConfig          `mapstructure:"log" toml:"log"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Icon    string `mapstructure:"icon" toml:"icon"`
}

// GradientConfig holds the hue angles of the work gradient. Rests walk the
// same arc in reverse.
type GradientConfig struct {
	WorkStart int `mapstructure:"work_start" toml:"work_start"`
	WorkEnd   int `mapstructure:"work_end" toml:"work_end"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `mapstructure:"file" toml:"file"`
	Level string `mapstructure:"level" toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Work:      25,
		ShortRest: 10,
		LongRest:  25,
		Notifications: NotificationConfig{
			Enabled: true,
			Icon:    "./pomodoro.png",
		},
		Gradient: GradientConfig{
			WorkStart: 330,
			WorkEnd:   120,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"profile":    "profile",
	"work":       "work",
	"short-rest": "short_rest",
	"long-rest":  "long_rest",
	"log-file":   "log.file",
	"log-level":  "log.level",
}

// Load builds the configuration from defaults, the config file, POMODORO_*
// environment variables and the given flags, in increasing precedence.
// An empty path means the default location, which may be absent.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	explicit := path != ""
	if !explicit {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes cfg to path as TOML.
func Save(cfg *Config, path string) error {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("profile", cfg.Profile)
	v.Set("work", cfg.Work)
	v.Set("short_rest", cfg.ShortRest)
	v.Set("long_rest", cfg.LongRest)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.icon", cfg.Notifications.Icon)
	v.Set("gradient.work_start", cfg.Gradient.WorkStart)
	v.Set("gradient.work_end", cfg.Gradient.WorkEnd)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	return v.WriteConfigAs(path)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomodoro", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("profile", d.Profile)
	v.SetDefault("work", d.Work)
	v.SetDefault("short_rest", d.ShortRest)
	v.SetDefault("long_rest", d.LongRest)
	v.SetDefault("notifications.enabled", d.Notifications.Enabled)
	v.SetDefault("notifications.icon", d.Notifications.Icon)
	v.SetDefault("gradient.work_start", d.Gradient.WorkStart)
	v.SetDefault("gradient.work_end", d.Gradient.WorkEnd)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	for name, minutes := range map[string]int{
		"work":       c.Work,
		"short_rest": c.ShortRest,
		"long_rest":  c.LongRest,
	} {
		if minutes < MinMinutes || minutes > MaxMinutes {
			errs = append(errs, fmt.Errorf("%s must be between %d and %d minutes, got %d", name, MinMinutes, MaxMinutes, minutes))
		}
	}
	for name, angle := range map[string]int{
		"gradient.work_start": c.Gradient.WorkStart,
		"gradient.work_end":   c.Gradient.WorkEnd,
	} {
		if angle < 0 || angle >= 360 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 360), got %d", name, angle))
		}
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// ToPomodoroDomainConfig converts the config to the domain PomodoroConfig.
func (c *Config) ToPomodoroDomainConfig() domain.PomodoroConfig {
	return domain.PomodoroConfig{
		Profile:           c.Profile,
		WorkDuration:      time.Duration(c.Work) * time.Minute,
		ShortRestDuration: time.Duration(c.ShortRest) * time.Minute,
		LongRestDuration:  time.Duration(c.LongRest) * time.Minute,
	}
}

// Gradients returns the work gradient and the rest gradient, which walks the
// work arc backwards.
func (c *Config) Gradients() (work, rest gradient.Gradient) {
	start, end := float64(c.Gradient.WorkStart), float64(c.Gradient.WorkEnd)
	work = gradient.New(gradient.Bounded(start, end), gradient.Clockwise, domain.CellCount)
	rest = gradient.New(gradient.Bounded(end, start), gradient.CounterClockwise, domain.CellCount)
	return work, rest
}

// TOML renders the configuration as a TOML document.
func (c *Config) TOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
