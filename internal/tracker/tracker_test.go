package tracker

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/storage"
)

func setupTracker(t *testing.T, at time.Time) (*Tracker, storage.Store) {
	t.Helper()
	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "habitd-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	tr, err := Load(context.Background(), store, clock.FixedClock{Instant: at})
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	return tr, store
}

func march14() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local) // a Saturday
}

func floatPtr(v float64) *float64 { return &v }

func TestLoadFirstRunDefaults(t *testing.T) {
	tr, _ := setupTracker(t, march14())
	state := tr.State()
	if state.LastResetDate != "2026-03-14" {
		t.Fatalf("last reset = %q, want 2026-03-14", state.LastResetDate)
	}
	if len(state.Classes) == 0 || len(state.ChallengeDays) != model.ChallengeDayCount {
		t.Fatalf("unexpected defaults: %+v", state)
	}
	if len(tr.History()) != 0 {
		t.Fatal("expected empty history on first run")
	}
}

func TestLoadRollsOverStaleDate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "habitd-test.db")
	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	stale := model.DefaultState("2026-03-13")
	stale.WaterGlasses = 4
	if err := store.SaveState(ctx, stale); err != nil {
		t.Fatalf("seed state: %v", err)
	}

	tr, err := Load(ctx, store, clock.FixedClock{Instant: march14()})
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	if got := tr.State().LastResetDate; got != "2026-03-14" {
		t.Fatalf("last reset = %q, want 2026-03-14", got)
	}
	if tr.State().WaterGlasses != 0 {
		t.Fatal("expected water reset by load-time rollover")
	}
	if len(tr.History()) != 1 || tr.History()[0].Date != "2026-03-13" {
		t.Fatalf("expected the stale day archived, got %+v", tr.History())
	}
}

func TestLoadSurvivesCorruptBlob(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "habitd-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := storage.MigrateUp(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	seed := `INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)`
	if _, err := db.Exec(seed, storage.StateKey, "{broken", "2026-03-14T00:00:00Z"); err != nil {
		t.Fatalf("seed state blob: %v", err)
	}
	if _, err := db.Exec(seed, storage.HistoryKey, `"nope"`, "2026-03-14T00:00:00Z"); err != nil {
		t.Fatalf("seed history blob: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close seed db: %v", err)
	}

	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	tr, err := Load(context.Background(), store, clock.FixedClock{Instant: march14()})
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	state := tr.State()
	if state.LastResetDate != "2026-03-14" || len(state.ChallengeDays) != model.ChallengeDayCount {
		t.Fatalf("expected fresh defaults after corrupt blob, got %+v", state)
	}
	if len(tr.History()) != 0 {
		t.Fatal("expected empty history after corrupt history blob")
	}
}

func TestToggleTaskPersists(t *testing.T) {
	tr, store := setupTracker(t, march14())
	ctx := context.Background()

	if err := tr.ToggleTask(ctx, "meditation"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !tr.State().TasksDone["meditation"] {
		t.Fatal("expected task marked done")
	}
	if err := tr.ToggleTask(ctx, "meditation"); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if tr.State().TasksDone["meditation"] {
		t.Fatal("expected task unmarked")
	}

	persisted, err := store.LoadState(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if persisted.TasksDone["meditation"] {
		t.Fatal("expected persisted blob to match memory")
	}

	if err := tr.ToggleTask(ctx, "  "); err == nil {
		t.Fatal("expected error for blank task id")
	}
}

func TestSetWaterGlassesRange(t *testing.T) {
	tr, _ := setupTracker(t, march14())
	ctx := context.Background()

	if err := tr.SetWaterGlasses(ctx, 5); err != nil {
		t.Fatalf("set water: %v", err)
	}
	if got := tr.State().WaterGlasses; got != 5 {
		t.Fatalf("water = %d, want 5", got)
	}
	if err := tr.SetWaterGlasses(ctx, 9); !errors.Is(err, model.ErrInvalidWaterCount) {
		t.Fatalf("expected ErrInvalidWaterCount, got %v", err)
	}
	if err := tr.SetWaterGlasses(ctx, -1); !errors.Is(err, model.ErrInvalidWaterCount) {
		t.Fatalf("expected ErrInvalidWaterCount, got %v", err)
	}
}

func TestSetProgressFields(t *testing.T) {
	tr, _ := setupTracker(t, march14())
	ctx := context.Background()

	if err := tr.SetProgress(ctx, FieldWeight, floatPtr(71.2)); err != nil {
		t.Fatalf("set weight: %v", err)
	}
	if err := tr.SetProgress(ctx, FieldSteps, floatPtr(9000)); err != nil {
		t.Fatalf("set steps: %v", err)
	}
	state := tr.State()
	if state.Progress.Weight == nil || *state.Progress.Weight != 71.2 {
		t.Fatalf("weight = %v", state.Progress.Weight)
	}
	if err := tr.SetProgress(ctx, FieldSteps, nil); err != nil {
		t.Fatalf("clear steps: %v", err)
	}
	if tr.State().Progress.Steps != nil {
		t.Fatal("expected steps cleared")
	}
	if err := tr.SetProgress(ctx, ProgressField("mood"), floatPtr(1)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestToggleChallengeDayUpdatesStreaks(t *testing.T) {
	tr, _ := setupTracker(t, march14())
	ctx := context.Background()

	for _, idx := range []int{87, 88, 89} {
		if err := tr.ToggleChallengeDay(ctx, idx); err != nil {
			t.Fatalf("toggle day %d: %v", idx, err)
		}
	}
	state := tr.State()
	if state.CurrentStreak != 3 || state.LongestStreak != 3 {
		t.Fatalf("streaks = %d/%d, want 3/3", state.CurrentStreak, state.LongestStreak)
	}

	if err := tr.ToggleChallengeDay(ctx, 89); err != nil {
		t.Fatalf("untoggle day 89: %v", err)
	}
	state = tr.State()
	if state.CurrentStreak != 0 {
		t.Fatalf("current = %d, want 0 after breaking last day", state.CurrentStreak)
	}
	if state.LongestStreak != 2 {
		t.Fatalf("longest = %d, want 2", state.LongestStreak)
	}
}

func TestToggleChallengeDayRejectsOutOfRange(t *testing.T) {
	tr, _ := setupTracker(t, march14())
	ctx := context.Background()
	for _, idx := range []int{-1, 90, 1000} {
		if err := tr.ToggleChallengeDay(ctx, idx); !errors.Is(err, model.ErrChallengeIndexRange) {
			t.Fatalf("index %d: expected ErrChallengeIndexRange, got %v", idx, err)
		}
	}
}

func TestClassCRUDByID(t *testing.T) {
	tr, _ := setupTracker(t, march14())
	ctx := context.Background()

	entry := model.NewClassEntry(5, "Statistics", "11:00 AM", "1 hour")
	if err := tr.AddClass(ctx, entry); err != nil {
		t.Fatalf("add class: %v", err)
	}

	entry.Name = "Applied Statistics"
	entry.Time = "12:00 PM"
	if err := tr.UpdateClass(ctx, entry); err != nil {
		t.Fatalf("update class: %v", err)
	}
	got, _, ok := tr.State().ClassByID(entry.ID)
	if !ok || got.Name != "Applied Statistics" || got.Time != "12:00 PM" {
		t.Fatalf("updated class = %+v, ok=%v", got, ok)
	}

	if err := tr.RemoveClass(ctx, entry.ID); err != nil {
		t.Fatalf("remove class: %v", err)
	}
	if _, _, ok := tr.State().ClassByID(entry.ID); ok {
		t.Fatal("expected class removed")
	}

	if err := tr.UpdateClass(ctx, entry); !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
	if err := tr.RemoveClass(ctx, "missing"); !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}

	bad := model.NewClassEntry(9, "Broken", "9:00 AM", "")
	if err := tr.AddClass(ctx, bad); !errors.Is(err, model.ErrInvalidWeekday) {
		t.Fatalf("expected ErrInvalidWeekday, got %v", err)
	}
}

func TestStateReturnsCopy(t *testing.T) {
	tr, _ := setupTracker(t, march14())
	ctx := context.Background()
	if err := tr.SetProgress(ctx, FieldWeight, floatPtr(70.0)); err != nil {
		t.Fatalf("set weight: %v", err)
	}

	state := tr.State()
	state.TasksDone["meditation"] = true
	state.ChallengeDays[0] = true
	*state.Progress.Weight = 99.9
	state.Progress.Steps = floatPtr(1)

	if tr.State().TasksDone["meditation"] || tr.State().ChallengeDays[0] {
		t.Fatal("mutating the returned copy leaked into the tracker")
	}
	if got := tr.State().Progress; got.Weight == nil || *got.Weight != 70.0 || got.Steps != nil {
		t.Fatalf("writing through copied progress pointers leaked: %+v", got)
	}
}

// Mirrors the runtime wiring where the reminder poller snapshots state
// from its own goroutine while the UI loop mutates the tracker. Run
// with -race.
func TestConcurrentStateAndMutations(t *testing.T) {
	tr, _ := setupTracker(t, march14())
	ctx := context.Background()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			state := tr.State()
			_ = state.ClassesOn(time.Saturday)
			_ = state.CompletedTaskCount()
			_ = tr.History()
		}
	}()

	for i := 0; i < 50; i++ {
		if err := tr.ToggleTask(ctx, "meditation"); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		entry := model.NewClassEntry(6, "Seminar", "4:00 PM", "1 hour")
		if err := tr.AddClass(ctx, entry); err != nil {
			t.Fatalf("add class: %v", err)
		}
		if err := tr.RemoveClass(ctx, entry.ID); err != nil {
			t.Fatalf("remove class: %v", err)
		}
		if err := tr.ToggleChallengeDay(ctx, i%model.ChallengeDayCount); err != nil {
			t.Fatalf("toggle day: %v", err)
		}
	}
	close(done)
	wg.Wait()
}
