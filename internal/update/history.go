package update

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handleHistoryKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k", "down", "j":
		var cmd tea.Cmd
		m.historyTable, cmd = m.historyTable.Update(msg)
		_ = cmd
	}
	return m
}
