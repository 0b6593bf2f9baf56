// Package schedule assembles the day's reminder-eligible task list.
package schedule

import (
	"strings"
	"time"

	"github.com/sandeepkv93/habitd/internal/model"
)

// DailyChecklist is the fixed recurring routine. The order is stable so
// aggregation is deterministic for identical input.
func DailyChecklist() []model.ReminderTask {
	return []model.ReminderTask{
		{Name: "Wake-up & Stretch", Time: "6:00 AM", Category: model.CategoryMorning},
		{Name: "Water + Lemon", Time: "6:15 AM", Category: model.CategoryMorning},
		{Name: "Meditation", Time: "6:30 AM", Category: model.CategoryMorning},
		{Name: "Morning Exercise", Time: "7:00 AM", Category: model.CategoryExercise},
		{Name: "Morning Yoga", Time: "7:00 AM", Category: model.CategoryExercise},
		{Name: "Gym / Home Workout", Time: "6:00 PM", Category: model.CategoryExercise},
		{Name: "Evening Walk", Time: "7:00 PM", Category: model.CategoryExercise},
		{Name: "Breakfast", Time: "8:00 AM", Category: model.CategoryMeal},
		{Name: "Mid-Morning Snack", Time: "11:00 AM", Category: model.CategoryMeal},
		{Name: "Lunch", Time: "1:00 PM", Category: model.CategoryMeal},
		{Name: "Evening Snack", Time: "5:00 PM", Category: model.CategoryMeal},
		{Name: "Dinner", Time: "7:30 PM", Category: model.CategoryMeal},
	}
}

// ForDay merges the static checklist with the classes scheduled on the
// given weekday. Class tasks are rendered as "<Name> Class".
func ForDay(classes []model.ClassEntry, weekday time.Weekday) []model.ReminderTask {
	out := DailyChecklist()
	for _, c := range classes {
		if c.Weekday != int(weekday) {
			continue
		}
		out = append(out, model.ReminderTask{
			Name:     c.Name + " Class",
			Time:     c.Time,
			Category: model.CategoryClass,
			ClassID:  c.ID,
		})
	}
	return out
}

// TotalForDay is the denominator recorded in the daily history summary.
func TotalForDay(classes []model.ClassEntry, weekday time.Weekday) int {
	return len(ForDay(classes, weekday))
}

// TaskID derives the stable checklist key for a task. Static tasks key
// off a slug of their name; class tasks are keyed by class ID via
// ClassTaskID so renames and reorders do not orphan completion marks.
func TaskID(t model.ReminderTask) string {
	if t.ClassID != "" {
		return "class-" + t.ClassID
	}
	return slug(t.Name)
}

// ClassTaskID keys a class checklist entry by the class's generated ID.
func ClassTaskID(c model.ClassEntry) string {
	return "class-" + c.ID
}

func slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
