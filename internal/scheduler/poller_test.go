package scheduler

import (
	"testing"
	"time"

	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/model"
)

func staticSource(tasks ...model.ReminderTask) TaskSource {
	return func() []model.ReminderTask { return tasks }
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 0, 0, time.Local)
}

func drainOne(t *testing.T, p *Poller) FiredReminder {
	t.Helper()
	select {
	case ev := <-p.C():
		return ev
	default:
		t.Fatal("expected a fired reminder")
		return FiredReminder{}
	}
}

func assertEmpty(t *testing.T, p *Poller) {
	t.Helper()
	select {
	case ev := <-p.C():
		t.Fatalf("unexpected event: %+v", ev)
	default:
	}
}

func TestUpcomingFiresExactlyOnce(t *testing.T) {
	task := model.ReminderTask{Name: "Breakfast", Time: "9:00 AM", Category: model.CategoryMeal}
	p := NewPoller(DefaultPollInterval, clock.SystemClock{}, staticSource(task), nil, 8)

	// 8:50, time-to-task exactly ten minutes.
	p.evaluate(at(8, 50))
	ev := drainOne(t, p)
	if ev.Phase != PhaseUpcoming || ev.TimeDiffMinutes != UpcomingLeadMinutes {
		t.Fatalf("unexpected event: %+v", ev)
	}

	// Repeat polls at the same offset stay silent.
	p.evaluate(at(8, 50))
	p.evaluate(at(8, 50))
	assertEmpty(t, p)
}

func TestDueFiresAtZero(t *testing.T) {
	task := model.ReminderTask{Name: "Mathematics Class", Time: "9:00 AM", Category: model.CategoryClass}
	p := NewPoller(DefaultPollInterval, clock.SystemClock{}, staticSource(task), nil, 8)

	p.evaluate(at(9, 0))
	ev := drainOne(t, p)
	if ev.Phase != PhaseDue || ev.TimeDiffMinutes != 0 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	p.evaluate(at(9, 0))
	assertEmpty(t, p)
}

func TestExactMatchMissesOtherOffsets(t *testing.T) {
	task := model.ReminderTask{Name: "Lunch", Time: "1:00 PM", Category: model.CategoryMeal}
	p := NewPoller(DefaultPollInterval, clock.SystemClock{}, staticSource(task), nil, 8)

	for _, tm := range []time.Time{at(12, 49), at(12, 51), at(13, 1), at(11, 0)} {
		p.evaluate(tm)
	}
	assertEmpty(t, p)
}

func TestExpiryClearsMarkersForNextDay(t *testing.T) {
	task := model.ReminderTask{Name: "Morning Yoga", Time: "7:00 AM", Category: model.CategoryExercise}
	p := NewPoller(DefaultPollInterval, clock.SystemClock{}, staticSource(task), nil, 8)

	p.evaluate(at(6, 50))
	p.evaluate(at(7, 0))
	if got := len(drain(p)); got != 2 {
		t.Fatalf("expected 2 events, got %d", got)
	}

	// Two hours past is still within the marker window.
	p.evaluate(at(9, 0))
	assertEmpty(t, p)
	if len(p.fired) != 2 {
		t.Fatalf("expected markers retained, got %d", len(p.fired))
	}

	// Beyond two hours the markers expire...
	p.evaluate(at(9, 1))
	if len(p.fired) != 0 {
		t.Fatalf("expected markers cleared, got %d", len(p.fired))
	}

	// ...so the same task/time fires again (next day's pass).
	p.evaluate(at(6, 50))
	ev := drainOne(t, p)
	if ev.Phase != PhaseUpcoming {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestUnparseableTimeIsSkipped(t *testing.T) {
	bad := model.ReminderTask{Name: "Broken", Time: "noonish", Category: model.CategoryMeal}
	good := model.ReminderTask{Name: "Dinner", Time: "7:30 PM", Category: model.CategoryMeal}
	p := NewPoller(DefaultPollInterval, clock.SystemClock{}, staticSource(bad, good), nil, 8)

	p.evaluate(at(19, 30))
	ev := drainOne(t, p)
	if ev.Task.Name != "Dinner" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	assertEmpty(t, p)
}

func TestDroppedWhenConsumerLags(t *testing.T) {
	tasks := []model.ReminderTask{
		{Name: "A", Time: "9:00 AM", Category: model.CategoryMorning},
		{Name: "B", Time: "9:00 AM", Category: model.CategoryMeal},
		{Name: "C", Time: "9:00 AM", Category: model.CategoryExercise},
	}
	p := NewPoller(DefaultPollInterval, clock.SystemClock{}, staticSource(tasks...), nil, 1)

	p.evaluate(at(9, 0))
	if p.Dropped() != 2 {
		t.Fatalf("expected 2 dropped events, got %d", p.Dropped())
	}
}

func TestStartStopRestart(t *testing.T) {
	task := model.ReminderTask{Name: "Evening Walk", Time: "7:00 PM", Category: model.CategoryExercise}
	fixed := clock.FixedClock{Instant: at(18, 50)}
	p := NewPoller(10*time.Millisecond, fixed, staticSource(task), nil, 8)

	p.Start()
	p.Start() // second call is a no-op
	ev := waitEvent(t, p, time.Second)
	if ev.Phase != PhaseUpcoming {
		t.Fatalf("unexpected event: %+v", ev)
	}
	p.Stop()
	p.Stop() // idempotent

	// Restart must not refire the already-used marker.
	p.Restart()
	time.Sleep(50 * time.Millisecond)
	p.Stop()
	assertEmpty(t, p)
}

func drain(p *Poller) []FiredReminder {
	out := make([]FiredReminder, 0)
	for {
		select {
		case ev := <-p.C():
			out = append(out, ev)
		default:
			return out
		}
	}
}

func waitEvent(t *testing.T, p *Poller, timeout time.Duration) FiredReminder {
	t.Helper()
	select {
	case ev := <-p.C():
		return ev
	case <-time.After(timeout):
		t.Fatal("timed out waiting for event")
		return FiredReminder{}
	}
}
