package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/config"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/notify"
	"github.com/sandeepkv93/habitd/internal/schedule"
	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/storage"
	"github.com/sandeepkv93/habitd/internal/tracker"
	"github.com/sandeepkv93/habitd/internal/update"
)

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

func openLogger(cfg config.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if cfg.LogFile == "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "habitd"})
		return logger, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "habitd",
		ReportTimestamp: true,
	})
	return logger, func() { _ = f.Close() }, nil
}

func openTracker(ctx context.Context, cfg config.Config, clk clock.Clock) (*tracker.Tracker, storage.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	tr, err := tracker.Load(ctx, store, clk)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("load tracker: %w", err)
	}
	return tr, store, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLogger, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLogger()

	clk := clock.SystemClock{}
	tr, store, err := openTracker(cmd.Context(), cfg, clk)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	source := func() []model.ReminderTask {
		state := tr.State()
		return schedule.ForDay(state.Classes, clk.Now().Weekday())
	}
	poller := scheduler.NewPoller(
		time.Duration(cfg.ReminderPollSeconds)*time.Second,
		clk, source, logger, cfg.SchedulerBuffer,
	)
	poller.Start()
	defer poller.Stop()

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = notify.ExecNotifier{}
	}
	var sounder notify.Sounder = notify.NoopSounder{}
	if cfg.SoundEnabled {
		sounder = notify.ExecSounder{}
	}

	m := update.NewModel(tr,
		update.WithPoller(poller),
		update.WithClock(clk),
		update.WithNotifier(notifier),
		update.WithSounder(sounder),
		update.WithDayTick(time.Duration(cfg.DayTickSeconds)*time.Second),
	)

	logger.Info("starting", "db", cfg.DBPath, "poll", cfg.ReminderPollSeconds)
	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		logger.Error("tui exited", "err", err)
		return fmt.Errorf("habitd failed: %w", err)
	}
	if dropped := poller.Dropped(); dropped > 0 {
		logger.Warn("reminders dropped while ui was busy", "count", dropped)
	}
	return nil
}
