package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/habitd/internal/clock"
)

var ErrInvalidCategory = errors.New("model: invalid task category")

// Category groups reminder tasks for icon and message selection.
type Category string

const (
	CategoryMorning  Category = "morning"
	CategoryExercise Category = "exercise"
	CategoryMeal     Category = "meal"
	CategoryClass    Category = "class"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryMorning, CategoryExercise, CategoryMeal, CategoryClass:
		return true
	default:
		return false
	}
}

func (c Category) Icon() string {
	switch c {
	case CategoryMorning:
		return "🌅"
	case CategoryExercise:
		return "💪"
	case CategoryMeal:
		return "🍽️"
	case CategoryClass:
		return "📚"
	default:
		return "⏰"
	}
}

// ReminderTask is one reminder-eligible entry for today. It is derived
// fresh on every poll and never persisted.
type ReminderTask struct {
	Name     string
	Time     string // 12-hour display string
	Category Category
	ClassID  string // set only for tasks derived from a class entry
}

func (t ReminderTask) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: reminder task name is required")
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if _, err := clock.ParseMinuteOfDay(t.Time); err != nil {
		return fmt.Errorf("model: reminder task time: %w", err)
	}
	return nil
}
