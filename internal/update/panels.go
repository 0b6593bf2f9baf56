package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/notify"
	"github.com/sandeepkv93/habitd/internal/schedule"
	"github.com/sandeepkv93/habitd/internal/views"
)

const (
	editorFieldName = iota
	editorFieldTime
	editorFieldDuration
	editorFieldWeekday
	editorFieldCount
)

func (m *Model) initBubbleComponents() {
	m.todayList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 14)
	m.todayList.Title = "Today (list)"
	m.todayList.SetShowHelp(false)
	m.todayList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Tasks", Width: 8},
		{Title: "Water", Width: 6},
		{Title: "Weight", Width: 8},
	}
	m.historyTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.editorInputs = make([]textinput.Model, 3)
	prompts := []string{"name> ", "time> ", "duration> "}
	for i := range m.editorInputs {
		in := textinput.New()
		in.Prompt = prompts[i]
		in.CharLimit = 64
		in.Width = 32
		m.editorInputs[i] = in
	}

	m.doneProgress = progress.New(progress.WithDefaultGradient())
	m.challengeProgress = progress.New(progress.WithDefaultGradient())
	m.tipViewport = viewport.New(54, 4)
	m.helpModel = helpModelNew()
}

func (m *Model) syncBubbleData() {
	state := m.Tracker.State()
	now := m.Clock.Now()
	tasks := schedule.ForDay(state.Classes, now.Weekday())

	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		desc := task.Time
		if state.TasksDone[schedule.TaskID(task)] {
			desc += " (done)"
		}
		items = append(items, listItem{title: task.Name, description: desc})
	}
	m.todayList.SetItems(items)
	if len(items) > 0 && m.Today.Cursor < len(items) {
		m.todayList.Select(m.Today.Cursor)
	}

	history := m.Tracker.History()
	rows := make([]table.Row, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		rec := history[i]
		weight := "-"
		if rec.Progress.Weight != nil {
			weight = fmt.Sprintf("%gkg", *rec.Progress.Weight)
		}
		rows = append(rows, table.Row{
			rec.Date,
			fmt.Sprintf("%d/%d", rec.TasksDone, rec.TotalTasks),
			fmt.Sprintf("%d/%d", rec.WaterGlasses, model.MaxWaterGlasses),
			weight,
		})
	}
	m.historyTable.SetRows(rows)

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	// The bars render via ViewAs with these values; SetPercent would need
	// its returned FrameMsg command pumped through Update to ever move.
	total := schedule.TotalForDay(state.Classes, now.Weekday())
	m.donePct = 0
	if total > 0 {
		m.donePct = float64(state.CompletedTaskCount()) / float64(total)
	}
	m.challengePct = float64(state.ChallengeCompletedCount()) / float64(model.ChallengeDayCount)

	m.tipViewport.SetContent(views.RenderMarkdown(TipOfDay(now)))
}

func (m Model) renderTodayView() string {
	state := m.Tracker.State()
	now := m.Clock.Now()
	tasks := schedule.ForDay(state.Classes, now.Weekday())

	items := make([]views.TodayItemData, 0, len(tasks))
	for i, task := range tasks {
		id := schedule.TaskID(task)
		items = append(items, views.TodayItemData{
			ID:       id,
			Name:     task.Name,
			Time:     task.Time,
			Icon:     task.Category.Icon(),
			Done:     state.TasksDone[id],
			Selected: i == m.Today.Cursor,
		})
	}
	return views.RenderTodayPanel(views.TodayPanelData{
		DateLabel:    clock.DateKey(now) + " " + now.Weekday().String(),
		Items:        items,
		DoneCount:    state.CompletedTaskCount(),
		TotalCount:   len(tasks),
		WaterGlasses: state.WaterGlasses,
		Progress:     state.Progress,
		Tip:          TipOfDay(now),
	})
}

func (m Model) renderClassesView() string {
	state := m.Tracker.State()
	byDay := make(map[string][]views.ClassItemData)
	days := make([]string, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		days = append(days, wd.String())
	}
	for i, c := range state.Classes {
		day := time.Weekday(c.Weekday).String()
		byDay[day] = append(byDay[day], views.ClassItemData{
			ID:       c.ID,
			Name:     c.Name,
			Time:     c.Time,
			Duration: c.Duration,
			Selected: i == m.Classes.Cursor,
		})
	}
	return views.RenderClassesPanel(views.ClassesPanelData{
		Weekdays:   days,
		ByWeekday:  byDay,
		EditorView: m.renderClassEditor(),
	})
}

func (m Model) renderClassEditor() string {
	ed := m.Classes.Editor
	if !ed.Active {
		return ""
	}
	var b strings.Builder
	mode := "add"
	if ed.EditingID != "" {
		mode = "edit"
	}
	b.WriteString(fmt.Sprintf("mode: %s\n", mode))
	b.WriteString("keys: [tab]field [left/right]weekday [enter]save [esc]close\n")
	for i := range m.editorInputs {
		marker := " "
		if ed.FieldIndex == i {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", marker, m.editorInputs[i].View()))
	}
	marker := " "
	if ed.FieldIndex == editorFieldWeekday {
		marker = ">"
	}
	b.WriteString(fmt.Sprintf("%s weekday> %s\n", marker, ed.Weekday))
	if ed.Err != "" {
		b.WriteString("error: " + ed.Err)
	}
	return strings.TrimSpace(b.String())
}

func (m Model) renderChallengeView() string {
	state := m.Tracker.State()
	return views.RenderChallengePanel(views.ChallengePanelData{
		Days:          state.ChallengeDays,
		Cursor:        m.Challenge.Cursor,
		CurrentStreak: state.CurrentStreak,
		LongestStreak: state.LongestStreak,
	})
}

func (m Model) renderHistoryView() string {
	history := m.Tracker.History()
	rows := make([]views.HistoryRowData, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		rec := history[i]
		weight := ""
		if rec.Progress.Weight != nil {
			weight = fmt.Sprintf("%gkg", *rec.Progress.Weight)
		}
		rows = append(rows, views.HistoryRowData{
			Date:         rec.Date,
			TasksDone:    rec.TasksDone,
			TotalTasks:   rec.TotalTasks,
			WaterGlasses: rec.WaterGlasses,
			Weight:       weight,
		})
	}
	return views.RenderHistoryPanel(views.HistoryPanelData{Rows: rows})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) pushNotification(n notify.Notification) {
	if strings.TrimSpace(n.Body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if !m.NotifyEnabled {
		return
	}
	if err := m.notifier.Send(n); err != nil {
		m.Status = StatusBar{Text: "desktop notification failed: " + err.Error(), IsError: true}
	}
}
