package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/model"
)

const challengeGridColumns = 10

func (m Model) handleChallengeKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "left", "h":
		if m.Challenge.Cursor > 0 {
			m.Challenge.Cursor--
		}
	case "right", "l":
		if m.Challenge.Cursor < model.ChallengeDayCount-1 {
			m.Challenge.Cursor++
		}
	case "up", "k":
		if m.Challenge.Cursor >= challengeGridColumns {
			m.Challenge.Cursor -= challengeGridColumns
		}
	case "down", "j":
		if m.Challenge.Cursor < model.ChallengeDayCount-challengeGridColumns {
			m.Challenge.Cursor += challengeGridColumns
		}
	case " ", "enter":
		if err := m.Tracker.ToggleChallengeDay(m.appContext(), m.Challenge.Cursor); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		state := m.Tracker.State()
		m.Status = StatusBar{
			Text:    fmt.Sprintf("day %d toggled | streak %d (best %d)", m.Challenge.Cursor+1, state.CurrentStreak, state.LongestStreak),
			IsError: false,
		}
	}
	return m
}
