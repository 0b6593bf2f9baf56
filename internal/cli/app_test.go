package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/model"
)

func TestLoadConfigEnvOverride(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "override.db")
	t.Setenv("HABITD_DB_PATH", dbPath)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.DBPath != dbPath {
		t.Fatalf("db path = %q, want %q", cfg.DBPath, dbPath)
	}
}

func TestOpenTrackerCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HABITD_DB_PATH", filepath.Join(dir, "data", "habitd.db"))
	t.Setenv("HABITD_LOG_FILE", filepath.Join(dir, "habitd.log"))

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	tr, store, err := openTracker(context.Background(), cfg, clock.SystemClock{})
	if err != nil {
		t.Fatalf("openTracker failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	state := tr.State()
	if len(state.ChallengeDays) != model.ChallengeDayCount {
		t.Fatalf("challenge grid = %d cells, want %d", len(state.ChallengeDays), model.ChallengeDayCount)
	}
	if len(tr.History()) != 0 {
		t.Fatal("expected empty history on a fresh database")
	}
}

func TestOpenLoggerWritesToFile(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "habitd.log")
	cfg.LogLevel = "debug"

	logger, closeLogger, err := openLogger(cfg)
	if err != nil {
		t.Fatalf("openLogger failed: %v", err)
	}
	defer closeLogger()
	logger.Info("test entry")
}
