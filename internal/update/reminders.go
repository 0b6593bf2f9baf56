package update

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/habitd/internal/notify"
	"github.com/sandeepkv93/habitd/internal/scheduler"
)

// onDayTick runs the periodic midnight check. A rollover archives the
// outgoing day and resets cursors that point at stale rows.
func (m Model) onDayTick(at time.Time) Model {
	rolled, err := m.Tracker.RolloverIfNeeded(m.appContext(), m.Clock.Now())
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if !rolled {
		return m
	}
	m.Today.Cursor = 0
	m.Status = StatusBar{Text: "new day started, yesterday archived", IsError: false}
	m.pushNotification(notify.Notification{
		Title: "New Day",
		Body:  "Daily checklist reset. Yesterday was archived.",
		Level: "info",
		At:    at,
	})
	return m
}

func (m Model) onReminderFired(ev scheduler.FiredReminder) Model {
	m.reminderLog = append(m.reminderLog, ev)
	if len(m.reminderLog) > 20 {
		m.reminderLog = m.reminderLog[len(m.reminderLog)-20:]
	}

	n := notify.Compose(ev)
	m.pushNotification(n)
	if err := m.sounder.PlayAlertTone(); err != nil {
		m.Status = StatusBar{Text: "alert tone failed: " + err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("reminder: %s (%s)", ev.Task.Name, ev.Phase), IsError: false}
	return m
}
