package model

import (
	"errors"
	"fmt"
	"time"
)

// HistoryLimit caps the archived daily summaries. Oldest entries are
// evicted first.
const HistoryLimit = 30

// HistoryRecord is one archived day, written exactly once at rollover.
type HistoryRecord struct {
	Date         string   `json:"date"` // "2006-01-02"
	TasksDone    int      `json:"tasks_done"`
	TotalTasks   int      `json:"total_tasks"`
	WaterGlasses int      `json:"water_glasses"`
	Progress     Progress `json:"progress"`
}

func (h HistoryRecord) Validate() error {
	if _, err := time.Parse(dateLayout, h.Date); err != nil {
		return fmt.Errorf("model: history date: %w", err)
	}
	if h.TasksDone < 0 || h.TotalTasks < 0 {
		return errors.New("model: history task counts must be non-negative")
	}
	if h.WaterGlasses < 0 || h.WaterGlasses > MaxWaterGlasses {
		return fmt.Errorf("%w: got %d", ErrInvalidWaterCount, h.WaterGlasses)
	}
	return nil
}

// TrimHistory keeps the newest limit records. Records are ordered oldest
// first, so eviction drops from the front.
func TrimHistory(records []HistoryRecord, limit int) []HistoryRecord {
	if limit <= 0 || len(records) <= limit {
		return records
	}
	return records[len(records)-limit:]
}
