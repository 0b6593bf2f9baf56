package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/habitd/internal/clock"
)

const (
	// ChallengeDayCount is the fixed length of the 90-day challenge grid.
	ChallengeDayCount = 90
	// MaxWaterGlasses is the upper bound of the daily water tracker.
	MaxWaterGlasses = 8

	dateLayout = "2006-01-02"
)

var (
	ErrInvalidWeekday       = errors.New("model: weekday must be in [0,6]")
	ErrInvalidWaterCount    = errors.New("model: water glasses must be in [0,8]")
	ErrInvalidChallengeSize = errors.New("model: challenge grid must hold 90 days")
	ErrChallengeIndexRange  = errors.New("model: challenge day index out of range")
	ErrStreakOrder          = errors.New("model: current streak exceeds longest streak")
)

// Progress holds the optional daily health readings. Weight is a standing
// value carried across days; the rest are cleared at rollover.
type Progress struct {
	Weight   *float64 `json:"weight"`
	Steps    *float64 `json:"steps"`
	Exercise *float64 `json:"exercise"`
	Sleep    *float64 `json:"sleep"`
}

// Clone returns a Progress whose readings are backed by fresh pointers,
// so writes through the clone never reach the original.
func (p Progress) Clone() Progress {
	return Progress{
		Weight:   cloneFloat(p.Weight),
		Steps:    cloneFloat(p.Steps),
		Exercise: cloneFloat(p.Exercise),
		Sleep:    cloneFloat(p.Sleep),
	}
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// ClassEntry is one recurring weekly class. Entries are referenced by a
// generated ID, never by position.
type ClassEntry struct {
	ID       string `json:"id"`
	Weekday  int    `json:"weekday"` // 0=Sunday .. 6=Saturday
	Name     string `json:"name"`
	Time     string `json:"time"` // 12-hour display string, e.g. "9:00 AM"
	Duration string `json:"duration"`
}

func NewClassEntry(weekday int, name, timeStr, duration string) ClassEntry {
	return ClassEntry{
		ID:       uuid.NewString(),
		Weekday:  weekday,
		Name:     name,
		Time:     timeStr,
		Duration: duration,
	}
}

func (c ClassEntry) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("model: class id is required")
	}
	if c.Weekday < 0 || c.Weekday > 6 {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, c.Weekday)
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("model: class name is required")
	}
	if _, err := clock.ParseMinuteOfDay(c.Time); err != nil {
		return fmt.Errorf("model: class time: %w", err)
	}
	return nil
}

// TrackerState is the whole persisted tracker record. All mutation goes
// through the tracker package, which persists after every change.
type TrackerState struct {
	TasksDone     map[string]bool `json:"tasks_done"`
	WaterGlasses  int             `json:"water_glasses"`
	Progress      Progress        `json:"progress"`
	Classes       []ClassEntry    `json:"classes"`
	ChallengeDays []bool          `json:"challenge_days"`
	CurrentStreak int             `json:"current_streak"`
	LongestStreak int             `json:"longest_streak"`
	LastResetDate string          `json:"last_reset_date"` // "2006-01-02"
}

// DefaultState returns the first-run state: empty day, default class
// schedule, untouched challenge grid.
func DefaultState(today string) TrackerState {
	return TrackerState{
		TasksDone:     make(map[string]bool),
		Progress:      Progress{},
		Classes:       DefaultClasses(),
		ChallengeDays: make([]bool, ChallengeDayCount),
		LastResetDate: today,
	}
}

// DefaultClasses is the seed schedule used on first run and when a loaded
// blob carries no classes at all.
func DefaultClasses() []ClassEntry {
	return []ClassEntry{
		NewClassEntry(1, "Mathematics", "9:00 AM", "2 hours"),
		NewClassEntry(1, "Physics", "2:00 PM", "1.5 hours"),
		NewClassEntry(3, "Chemistry", "10:00 AM", "2 hours"),
		NewClassEntry(3, "Biology", "3:00 PM", "1.5 hours"),
		NewClassEntry(4, "Computer Science", "9:00 AM", "2 hours"),
		NewClassEntry(4, "English", "1:00 PM", "1 hour"),
	}
}

func (s TrackerState) Validate() error {
	if len(s.ChallengeDays) != ChallengeDayCount {
		return fmt.Errorf("%w: got %d", ErrInvalidChallengeSize, len(s.ChallengeDays))
	}
	if s.WaterGlasses < 0 || s.WaterGlasses > MaxWaterGlasses {
		return fmt.Errorf("%w: got %d", ErrInvalidWaterCount, s.WaterGlasses)
	}
	if s.CurrentStreak < 0 || s.LongestStreak < 0 {
		return errors.New("model: streaks must be non-negative")
	}
	if s.CurrentStreak > s.LongestStreak {
		return fmt.Errorf("%w: %d > %d", ErrStreakOrder, s.CurrentStreak, s.LongestStreak)
	}
	if _, err := time.Parse(dateLayout, s.LastResetDate); err != nil {
		return fmt.Errorf("model: last reset date: %w", err)
	}
	for _, c := range s.Classes {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Normalize repairs a partially populated blob in place: nil maps,
// wrong-sized challenge grids and out-of-range counters from older or
// hand-edited files. A blob that normalizes is usable even when it would
// not Validate as written.
func (s *TrackerState) Normalize(today string) {
	if s.TasksDone == nil {
		s.TasksDone = make(map[string]bool)
	}
	if len(s.Classes) == 0 {
		s.Classes = DefaultClasses()
	}
	for i := range s.Classes {
		if strings.TrimSpace(s.Classes[i].ID) == "" {
			s.Classes[i].ID = uuid.NewString()
		}
	}
	if len(s.ChallengeDays) != ChallengeDayCount {
		grid := make([]bool, ChallengeDayCount)
		copy(grid, s.ChallengeDays)
		s.ChallengeDays = grid
	}
	if s.WaterGlasses < 0 {
		s.WaterGlasses = 0
	}
	if s.WaterGlasses > MaxWaterGlasses {
		s.WaterGlasses = MaxWaterGlasses
	}
	if s.CurrentStreak < 0 {
		s.CurrentStreak = 0
	}
	if s.LongestStreak < s.CurrentStreak {
		s.LongestStreak = s.CurrentStreak
	}
	if _, err := time.Parse(dateLayout, s.LastResetDate); err != nil {
		s.LastResetDate = today
	}
}

// ClassByID returns the entry with the given ID and its slice index.
func (s TrackerState) ClassByID(id string) (ClassEntry, int, bool) {
	for i, c := range s.Classes {
		if c.ID == id {
			return c, i, true
		}
	}
	return ClassEntry{}, -1, false
}

// ClassesOn returns the classes scheduled for the given weekday, in
// stored order.
func (s TrackerState) ClassesOn(weekday time.Weekday) []ClassEntry {
	out := make([]ClassEntry, 0)
	for _, c := range s.Classes {
		if c.Weekday == int(weekday) {
			out = append(out, c)
		}
	}
	return out
}

// CompletedTaskCount counts checklist entries toggled on.
func (s TrackerState) CompletedTaskCount() int {
	n := 0
	for _, done := range s.TasksDone {
		if done {
			n++
		}
	}
	return n
}

// ChallengeCompletedCount counts marked challenge days.
func (s TrackerState) ChallengeCompletedCount() int {
	n := 0
	for _, day := range s.ChallengeDays {
		if day {
			n++
		}
	}
	return n
}
