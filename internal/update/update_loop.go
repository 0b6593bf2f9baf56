package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{dayTickCmd(m.dayTick)}
	if m.Poller != nil {
		cmds = append(cmds, waitForReminderCmd(m.Poller.C()))
	}
	return tea.Batch(cmds...)
}

func dayTickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return DayTickMsg{At: t} })
}

func waitForReminderCmd(ch <-chan scheduler.FiredReminder) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderFiredMsg{Event: ev}
	}
}

// Update handles one message. Bubble component refresh happens in View,
// which re-syncs from tracker state before rendering.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			next := m.handlePaletteKey(typed)
			return next, nil
		}

		if m.Classes.Editor.Active {
			next := m.handleClassEditorKey(typed)
			return next, nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Today:
			m.CurrentView = ViewToday
			return m, nil
		case m.Keys.Classes:
			m.CurrentView = ViewClasses
			return m, nil
		case m.Keys.Challenge:
			m.CurrentView = ViewChallenge
			return m, nil
		case m.Keys.History:
			m.CurrentView = ViewHistory
			return m, nil
		case "n":
			m.NotifyEnabled = !m.NotifyEnabled
			if m.NotifyEnabled {
				if m.Poller != nil {
					m.Poller.Restart()
				}
				m.Status = StatusBar{Text: "desktop notifications on", IsError: false}
			} else {
				m.Status = StatusBar{Text: "desktop notifications off", IsError: false}
			}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.CurrentView {
		case ViewToday:
			return m.handleTodayKey(typed), nil
		case ViewClasses:
			return m.handleClassesKey(typed), nil
		case ViewChallenge:
			return m.handleChallengeKey(typed), nil
		case ViewHistory:
			return m.handleHistoryKey(typed), nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case DayTickMsg:
		next := m.onDayTick(typed.At)
		return next, dayTickCmd(m.dayTick)
	case ReminderFiredMsg:
		next := m.onReminderFired(typed.Event)
		if m.Poller != nil {
			return next, waitForReminderCmd(m.Poller.C())
		}
		return next, nil
	}

	return m, nil
}

func (m Model) View() string {
	m.syncBubbleData()
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewToday:
		leftPane = m.renderTodayView()
		rightPane = m.doneProgress.ViewAs(m.donePct) + "\n" + m.tipViewport.View() + m.renderHelpIfVisible()
	case ViewClasses:
		leftPane = m.renderClassesView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewChallenge:
		leftPane = m.renderChallengeView()
		rightPane = m.challengeProgress.ViewAs(m.challengePct) + m.renderHelpIfVisible()
	case ViewHistory:
		leftPane = m.renderHistoryView()
		rightPane = m.historyTable.View() + m.renderHelpIfVisible()
	}
	notificationView := ""
	if len(m.reminderLog) > 0 {
		last := m.reminderLog[len(m.reminderLog)-1]
		notificationView = fmt.Sprintf("last-reminder: %s @ %s", last.Task.Name, last.At.Format("15:04:05"))
	}
	notificationView = strings.TrimSpace(strings.Join([]string{
		notificationView,
		strings.TrimSpace(m.renderNotificationsView()),
	}, "\n"))

	state := m.Tracker.State()
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("habitd | view: %s | streak: %d", m.CurrentView, state.CurrentStreak),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notificationView,
		Footer:       fmt.Sprintf("keys: %s today | %s classes | %s challenge | %s history | / cmd | %s help | %s quit", m.Keys.Today, m.Keys.Classes, m.Keys.Challenge, m.Keys.History, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewToday, ViewClasses, ViewChallenge, ViewHistory:
		return true
	default:
		return false
	}
}

func (m Model) appContext() context.Context {
	return context.Background()
}
