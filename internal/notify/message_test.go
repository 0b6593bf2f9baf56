package notify

import (
	"testing"
	"time"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/scheduler"
)

func fired(name string, cat model.Category, phase scheduler.Phase) scheduler.FiredReminder {
	return scheduler.FiredReminder{
		Task:  model.ReminderTask{Name: name, Time: "9:00 AM", Category: cat},
		Phase: phase,
		At:    time.Date(2026, 3, 14, 8, 50, 0, 0, time.Local),
	}
}

func TestComposePerCategoryAndPhase(t *testing.T) {
	cases := []struct {
		ev        scheduler.FiredReminder
		wantTitle string
		wantBody  string
	}{
		{fired("Morning Exercise", model.CategoryExercise, scheduler.PhaseDue), "💪 Morning Exercise", "Time for Morning Exercise! Let's get moving!"},
		{fired("Morning Exercise", model.CategoryExercise, scheduler.PhaseUpcoming), "💪 Morning Exercise", "Morning Exercise starts in 10 minutes. Get ready!"},
		{fired("Breakfast", model.CategoryMeal, scheduler.PhaseDue), "🍽️ Breakfast", "Breakfast time! Don't skip your meal."},
		{fired("Breakfast", model.CategoryMeal, scheduler.PhaseUpcoming), "🍽️ Breakfast", "Breakfast in 10 minutes. Start preparing!"},
		{fired("Physics Class", model.CategoryClass, scheduler.PhaseDue), "📚 Physics Class", "Physics Class is starting now!"},
		{fired("Physics Class", model.CategoryClass, scheduler.PhaseUpcoming), "📚 Physics Class", "Physics Class starts in 10 minutes"},
		{fired("Meditation", model.CategoryMorning, scheduler.PhaseDue), "🌅 Meditation", "Time for Meditation!"},
		{fired("Meditation", model.CategoryMorning, scheduler.PhaseUpcoming), "🌅 Meditation", "Meditation in 10 minutes"},
	}
	for _, tc := range cases {
		got := Compose(tc.ev)
		if got.Title != tc.wantTitle {
			t.Fatalf("title = %q, want %q", got.Title, tc.wantTitle)
		}
		if got.Body != tc.wantBody {
			t.Fatalf("body = %q, want %q", got.Body, tc.wantBody)
		}
	}
}

func TestComposeLevels(t *testing.T) {
	if got := Compose(fired("Lunch", model.CategoryMeal, scheduler.PhaseDue)).Level; got != "due" {
		t.Fatalf("level = %q, want due", got)
	}
	if got := Compose(fired("Lunch", model.CategoryMeal, scheduler.PhaseUpcoming)).Level; got != "upcoming" {
		t.Fatalf("level = %q, want upcoming", got)
	}
}

func TestNoopSinks(t *testing.T) {
	if err := (NoopNotifier{}).Send(Notification{Title: "x"}); err != nil {
		t.Fatalf("noop notifier: %v", err)
	}
	if err := (NoopSounder{}).PlayAlertTone(); err != nil {
		t.Fatalf("noop sounder: %v", err)
	}
}
