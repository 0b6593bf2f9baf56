package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/schedule"
)

// RolloverIfNeeded archives the outgoing day and resets the per-day
// fields once per calendar-day transition. The weight reading carries
// over; steps, exercise and sleep are cleared. Calling it again on the
// same day is a no-op, so it is safe from both the load path and the
// periodic day tick.
func (t *Tracker) RolloverIfNeeded(ctx context.Context, now time.Time) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	today := clock.DateKey(now)
	if t.state.LastResetDate == today {
		return false, nil
	}

	// The summary describes the day being closed out, so the task total
	// is taken against the outgoing day's weekday.
	outgoing := now
	if parsed, err := time.ParseInLocation("2006-01-02", t.state.LastResetDate, now.Location()); err == nil {
		outgoing = parsed
	}
	record := model.HistoryRecord{
		Date:         t.state.LastResetDate,
		TasksDone:    t.state.CompletedTaskCount(),
		TotalTasks:   schedule.TotalForDay(t.state.Classes, outgoing.Weekday()),
		WaterGlasses: t.state.WaterGlasses,
		Progress:     t.state.Progress.Clone(),
	}
	t.history = model.TrimHistory(append(t.history, record), model.HistoryLimit)

	t.state.TasksDone = make(map[string]bool)
	t.state.WaterGlasses = 0
	t.state.Progress = model.Progress{Weight: t.state.Progress.Weight}
	t.state.LastResetDate = today

	if err := t.store.SaveHistory(ctx, t.history); err != nil {
		return true, fmt.Errorf("save history: %w", err)
	}
	if err := t.saveState(ctx); err != nil {
		return true, err
	}
	return true, nil
}
