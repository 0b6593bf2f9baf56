// Package config loads habitd settings from an optional TOML file with
// HABITD_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DBPath   string `toml:"db_path"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`

	DesktopNotifications bool `toml:"desktop_notifications"`
	SoundEnabled         bool `toml:"sound_enabled"`

	ReminderPollSeconds int `toml:"reminder_poll_seconds"`
	DayTickSeconds      int `toml:"day_tick_seconds"`
	SchedulerBuffer     int `toml:"scheduler_buffer"`
}

func Default() Config {
	dataDir := defaultDataDir()
	return Config{
		DBPath:               filepath.Join(dataDir, "habitd.db"),
		LogFile:              filepath.Join(dataDir, "habitd.log"),
		LogLevel:             "info",
		DesktopNotifications: true,
		SoundEnabled:         true,
		ReminderPollSeconds:  30,
		DayTickSeconds:       60,
		SchedulerBuffer:      64,
	}
}

// Load reads the TOML file at path when it exists, then applies env
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}
	return FromEnv(cfg), nil
}

// DefaultPath is the conventional config file location.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "habitd", "config.toml")
	}
	return ""
}

// FromEnv overlays HABITD_* variables on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("HABITD_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITD_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITD_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v, ok := getEnvBool("HABITD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvBool("HABITD_SOUND_ENABLED"); ok {
		cfg.SoundEnabled = v
	}
	if v, ok := getEnvInt("HABITD_REMINDER_POLL_SECONDS"); ok && v > 0 {
		cfg.ReminderPollSeconds = v
	}
	if v, ok := getEnvInt("HABITD_DAY_TICK_SECONDS"); ok && v > 0 {
		cfg.DayTickSeconds = v
	}
	if v, ok := getEnvInt("HABITD_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	return cfg
}

func defaultDataDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, ".habitd")
	}
	return "."
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
