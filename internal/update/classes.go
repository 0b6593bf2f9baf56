package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/model"
)

func (m Model) handleClassesKey(msg tea.KeyMsg) Model {
	classes := m.Tracker.State().Classes

	switch msg.String() {
	case "up", "k":
		if m.Classes.Cursor > 0 {
			m.Classes.Cursor--
		}
	case "down", "j":
		if m.Classes.Cursor < len(classes)-1 {
			m.Classes.Cursor++
		}
	case "a":
		m = m.openClassEditor(model.ClassEntry{Weekday: int(m.Clock.Now().Weekday())}, "")
	case "e":
		if m.Classes.Cursor >= 0 && m.Classes.Cursor < len(classes) {
			entry := classes[m.Classes.Cursor]
			m = m.openClassEditor(entry, entry.ID)
		}
	case "d":
		if m.Classes.Cursor < 0 || m.Classes.Cursor >= len(classes) {
			return m
		}
		entry := classes[m.Classes.Cursor]
		if err := m.Tracker.RemoveClass(m.appContext(), entry.ID); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		if m.Classes.Cursor >= len(classes)-1 && m.Classes.Cursor > 0 {
			m.Classes.Cursor--
		}
		m.Status = StatusBar{Text: fmt.Sprintf("removed class: %s", entry.Name), IsError: false}
	}
	return m
}

func (m Model) openClassEditor(entry model.ClassEntry, editingID string) Model {
	m.Classes.Editor = ClassEditorState{
		Active:    true,
		EditingID: editingID,
		Weekday:   time.Weekday(entry.Weekday),
	}
	m.editorInputs[editorFieldName].SetValue(entry.Name)
	m.editorInputs[editorFieldTime].SetValue(entry.Time)
	m.editorInputs[editorFieldDuration].SetValue(entry.Duration)
	m.editorInputs[editorFieldName].Focus()
	m.Status = StatusBar{Text: "class editor open", IsError: false}
	return m
}

func (m Model) handleClassEditorKey(msg tea.KeyMsg) Model {
	ed := &m.Classes.Editor
	switch msg.String() {
	case "esc":
		ed.Active = false
		ed.Err = ""
		for i := range m.editorInputs {
			m.editorInputs[i].Blur()
		}
		m.Status = StatusBar{Text: "class editor closed", IsError: false}
	case "tab":
		m.editorInputs[minInt(ed.FieldIndex, len(m.editorInputs)-1)].Blur()
		ed.FieldIndex = (ed.FieldIndex + 1) % editorFieldCount
		if ed.FieldIndex < len(m.editorInputs) {
			m.editorInputs[ed.FieldIndex].Focus()
		}
	case "left":
		if ed.FieldIndex == editorFieldWeekday {
			ed.Weekday = (ed.Weekday + 6) % 7
		}
	case "right":
		if ed.FieldIndex == editorFieldWeekday {
			ed.Weekday = (ed.Weekday + 1) % 7
		}
	case "enter":
		m = m.saveClassFromEditor()
	default:
		if ed.FieldIndex < len(m.editorInputs) {
			var cmd tea.Cmd
			m.editorInputs[ed.FieldIndex], cmd = m.editorInputs[ed.FieldIndex].Update(msg)
			_ = cmd
		}
	}
	return m
}

func (m Model) saveClassFromEditor() Model {
	ed := &m.Classes.Editor
	name := strings.TrimSpace(m.editorInputs[editorFieldName].Value())
	timeStr := strings.TrimSpace(m.editorInputs[editorFieldTime].Value())
	duration := strings.TrimSpace(m.editorInputs[editorFieldDuration].Value())
	if duration == "" {
		duration = "1 hour"
	}

	var err error
	if ed.EditingID == "" {
		entry := model.NewClassEntry(int(ed.Weekday), name, timeStr, duration)
		err = m.Tracker.AddClass(m.appContext(), entry)
	} else {
		entry := model.ClassEntry{
			ID:       ed.EditingID,
			Weekday:  int(ed.Weekday),
			Name:     name,
			Time:     timeStr,
			Duration: duration,
		}
		err = m.Tracker.UpdateClass(m.appContext(), entry)
	}
	if err != nil {
		ed.Err = err.Error()
		return m
	}

	ed.Active = false
	ed.Err = ""
	for i := range m.editorInputs {
		m.editorInputs[i].Blur()
	}
	m.Status = StatusBar{Text: fmt.Sprintf("saved class: %s", name), IsError: false}
	return m
}
