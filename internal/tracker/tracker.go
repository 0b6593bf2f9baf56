// Package tracker owns the in-memory tracker state and its persistence.
// Every mutating operation goes through an explicit *Tracker so there is
// no hidden shared state; each mutation saves the whole record.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/storage"
)

var ErrClassNotFound = errors.New("tracker: class not found")

// ProgressField names one of the daily progress readings.
type ProgressField string

const (
	FieldWeight   ProgressField = "weight"
	FieldSteps    ProgressField = "steps"
	FieldExercise ProgressField = "exercise"
	FieldSleep    ProgressField = "sleep"
)

func (f ProgressField) IsValid() bool {
	switch f {
	case FieldWeight, FieldSteps, FieldExercise, FieldSleep:
		return true
	default:
		return false
	}
}

// Tracker binds the current TrackerState and history log to a store and
// a clock. Mutations come from the UI loop while the reminder poller
// reads snapshots from its own goroutine, so every method takes the
// mutex.
type Tracker struct {
	mu      sync.Mutex
	state   model.TrackerState
	history []model.HistoryRecord
	store   storage.Store
	clk     clock.Clock
}

// Load reads persisted state and history, falling back to defaults when
// a blob is missing or corrupt, then performs the load-time rollover.
func Load(ctx context.Context, store storage.Store, clk clock.Clock) (*Tracker, error) {
	now := clk.Now()
	today := clock.DateKey(now)

	state, err := store.LoadState(ctx)
	switch {
	case err == nil:
		state.Normalize(today)
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrCorrupt):
		state = model.DefaultState(today)
	default:
		return nil, fmt.Errorf("load state: %w", err)
	}

	history, err := store.LoadHistory(ctx)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrCorrupt):
		history = make([]model.HistoryRecord, 0)
	default:
		return nil, fmt.Errorf("load history: %w", err)
	}

	t := &Tracker{state: state, history: history, store: store, clk: clk}
	if _, err := t.RolloverIfNeeded(ctx, now); err != nil {
		return t, err
	}
	return t, nil
}

// State returns a deep copy of the current state. Mutating the copy,
// including writes through its Progress pointers, does not affect the
// tracker.
func (t *Tracker) State() model.TrackerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.state
	out.TasksDone = make(map[string]bool, len(t.state.TasksDone))
	for k, v := range t.state.TasksDone {
		out.TasksDone[k] = v
	}
	out.Progress = t.state.Progress.Clone()
	out.Classes = append([]model.ClassEntry(nil), t.state.Classes...)
	out.ChallengeDays = append([]bool(nil), t.state.ChallengeDays...)
	return out
}

// History returns a copy of the archive, oldest first.
func (t *Tracker) History() []model.HistoryRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := append([]model.HistoryRecord(nil), t.history...)
	for i := range out {
		out[i].Progress = out[i].Progress.Clone()
	}
	return out
}

// ToggleTask flips a checklist entry and persists.
func (t *Tracker) ToggleTask(ctx context.Context, taskID string) error {
	if strings.TrimSpace(taskID) == "" {
		return errors.New("tracker: task id is required")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.TasksDone[taskID] = !t.state.TasksDone[taskID]
	return t.saveState(ctx)
}

// SetWaterGlasses sets the filled-glass count, [0,8].
func (t *Tracker) SetWaterGlasses(ctx context.Context, count int) error {
	if count < 0 || count > model.MaxWaterGlasses {
		return fmt.Errorf("%w: got %d", model.ErrInvalidWaterCount, count)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.WaterGlasses = count
	return t.saveState(ctx)
}

// SetProgress records a daily reading; nil clears it.
func (t *Tracker) SetProgress(ctx context.Context, field ProgressField, value *float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch field {
	case FieldWeight:
		t.state.Progress.Weight = value
	case FieldSteps:
		t.state.Progress.Steps = value
	case FieldExercise:
		t.state.Progress.Exercise = value
	case FieldSleep:
		t.state.Progress.Sleep = value
	default:
		return fmt.Errorf("tracker: unknown progress field %q", field)
	}
	return t.saveState(ctx)
}

// ToggleChallengeDay flips one grid cell and recomputes both streaks.
// The index must be in [0,90).
func (t *Tracker) ToggleChallengeDay(ctx context.Context, index int) error {
	if index < 0 || index >= model.ChallengeDayCount {
		return fmt.Errorf("%w: %d", model.ErrChallengeIndexRange, index)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.ChallengeDays[index] = !t.state.ChallengeDays[index]
	t.state.CurrentStreak, t.state.LongestStreak = ComputeStreaks(t.state.ChallengeDays)
	return t.saveState(ctx)
}

// AddClass validates and appends a class entry.
func (t *Tracker) AddClass(ctx context.Context, entry model.ClassEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Classes = append(t.state.Classes, entry)
	return t.saveState(ctx)
}

// UpdateClass replaces the entry with the same ID.
func (t *Tracker) UpdateClass(ctx context.Context, entry model.ClassEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, idx, ok := t.state.ClassByID(entry.ID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrClassNotFound, entry.ID)
	}
	t.state.Classes[idx] = entry
	return t.saveState(ctx)
}

// RemoveClass deletes the entry with the given ID.
func (t *Tracker) RemoveClass(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, idx, ok := t.state.ClassByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrClassNotFound, id)
	}
	t.state.Classes = append(t.state.Classes[:idx], t.state.Classes[idx+1:]...)
	return t.saveState(ctx)
}

// saveState persists the current state. The caller must hold t.mu.
func (t *Tracker) saveState(ctx context.Context) error {
	if err := t.store.SaveState(ctx, t.state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
