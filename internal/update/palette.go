package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/commands"
	"github.com/sandeepkv93/habitd/internal/tracker"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Water: func(a commands.WaterArgs) (commands.Result, error) {
			if err := m.Tracker.SetWaterGlasses(m.appContext(), a.Count); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("water set to %d glass(es)", a.Count)}, nil
		},
		Progress: func(a commands.ProgressArgs) (commands.Result, error) {
			field := tracker.ProgressField(a.Field)
			if !field.IsValid() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown progress field: %s", a.Field)}
			}
			var value *float64
			if a.Value != "clear" {
				parsed, err := strconv.ParseFloat(a.Value, 64)
				if err != nil {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
				}
				value = &parsed
			}
			if err := m.Tracker.SetProgress(m.appContext(), field, value); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			if value == nil {
				return commands.Result{Message: fmt.Sprintf("progress %s cleared", field)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("progress %s = %g", field, *value)}, nil
		},
		Day: func(a commands.DayArgs) (commands.Result, error) {
			if err := m.Tracker.ToggleChallengeDay(m.appContext(), a.Day-1); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			state := m.Tracker.State()
			return commands.Result{Message: fmt.Sprintf("day %d toggled, streak %d", a.Day, state.CurrentStreak)}, nil
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			switch a.Subject {
			case "today":
				m.CurrentView = ViewToday
			case "classes":
				m.CurrentView = ViewClasses
			case "challenge":
				m.CurrentView = ViewChallenge
			case "history":
				m.CurrentView = ViewHistory
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", a.Subject)}
			}
			return commands.Result{Message: fmt.Sprintf("showing %s", a.Subject)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}
