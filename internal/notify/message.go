package notify

import (
	"fmt"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/scheduler"
)

// Compose turns a fired reminder into the outbound notification, with
// the body phrased per category and phase.
func Compose(ev scheduler.FiredReminder) Notification {
	return Notification{
		Title: fmt.Sprintf("%s %s", ev.Task.Category.Icon(), ev.Task.Name),
		Body:  body(ev.Task, ev.Phase),
		Level: levelFor(ev.Phase),
		At:    ev.At,
	}
}

func body(task model.ReminderTask, phase scheduler.Phase) string {
	due := phase == scheduler.PhaseDue
	switch task.Category {
	case model.CategoryExercise:
		if due {
			return fmt.Sprintf("Time for %s! Let's get moving!", task.Name)
		}
		return fmt.Sprintf("%s starts in 10 minutes. Get ready!", task.Name)
	case model.CategoryMeal:
		if due {
			return fmt.Sprintf("%s time! Don't skip your meal.", task.Name)
		}
		return fmt.Sprintf("%s in 10 minutes. Start preparing!", task.Name)
	case model.CategoryClass:
		if due {
			return fmt.Sprintf("%s is starting now!", task.Name)
		}
		return fmt.Sprintf("%s starts in 10 minutes", task.Name)
	case model.CategoryMorning:
		if due {
			return fmt.Sprintf("Time for %s!", task.Name)
		}
		return fmt.Sprintf("%s in 10 minutes", task.Name)
	default:
		if due {
			return fmt.Sprintf("Time for %s!", task.Name)
		}
		return fmt.Sprintf("%s starts in 10 minutes", task.Name)
	}
}

func levelFor(phase scheduler.Phase) string {
	if phase == scheduler.PhaseDue {
		return "due"
	}
	return "upcoming"
}
