package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/schedule"
)

func (m Model) handleTodayKey(msg tea.KeyMsg) Model {
	state := m.Tracker.State()
	tasks := schedule.ForDay(state.Classes, m.Clock.Now().Weekday())

	switch msg.String() {
	case "up", "k":
		if m.Today.Cursor > 0 {
			m.Today.Cursor--
		}
	case "down", "j":
		if m.Today.Cursor < len(tasks)-1 {
			m.Today.Cursor++
		}
	case " ", "enter":
		if m.Today.Cursor < 0 || m.Today.Cursor >= len(tasks) {
			return m
		}
		task := tasks[m.Today.Cursor]
		id := schedule.TaskID(task)
		if err := m.Tracker.ToggleTask(m.appContext(), id); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		if m.Tracker.State().TasksDone[id] {
			m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", task.Name), IsError: false}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("unchecked: %s", task.Name), IsError: false}
		}
	case "+", "=":
		m = m.adjustWater(1)
	case "-", "_":
		m = m.adjustWater(-1)
	}
	return m
}

// adjustWater clamps to [0,8] so holding +/- at a boundary stays quiet.
func (m Model) adjustWater(delta int) Model {
	next := m.Tracker.State().WaterGlasses + delta
	if next < 0 {
		next = 0
	}
	if next > model.MaxWaterGlasses {
		next = model.MaxWaterGlasses
	}
	if err := m.Tracker.SetWaterGlasses(m.appContext(), next); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("water: %d glass(es)", next), IsError: false}
	return m
}
