package views

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/habitd/internal/model"
)

type TodayItemData struct {
	ID       string
	Name     string
	Time     string
	Icon     string
	Done     bool
	Selected bool
}

type TodayPanelData struct {
	DateLabel    string
	Items        []TodayItemData
	DoneCount    int
	TotalCount   int
	WaterGlasses int
	Progress     model.Progress
	Tip          string
}

type ClassItemData struct {
	ID       string
	Name     string
	Time     string
	Duration string
	Selected bool
}

type ClassesPanelData struct {
	Weekdays   []string
	ByWeekday  map[string][]ClassItemData
	EditorView string
}

type ChallengePanelData struct {
	Days          []bool
	Cursor        int
	CurrentStreak int
	LongestStreak int
}

type HistoryRowData struct {
	Date         string
	TasksDone    int
	TotalTasks   int
	WaterGlasses int
	Weight       string
}

type HistoryPanelData struct {
	Rows []HistoryRowData
}

type StreaksPanelData struct {
	CurrentStreak  int
	LongestStreak  int
	CompletedDays  int
	ChallengeTotal int
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderTodayPanel(data TodayPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("today: %s\n", data.DateLabel))
	b.WriteString(fmt.Sprintf("done: %d/%d\n", data.DoneCount, data.TotalCount))
	b.WriteString("actions: [j/k]move [space]toggle [+/-]water [p]progress\n")
	for _, item := range data.Items {
		cursor := " "
		if item.Selected {
			cursor = ">"
		}
		check := "[ ]"
		if item.Done {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s (%s)\n", cursor, check, item.Icon, item.Name, item.Time))
	}
	b.WriteString("\n" + RenderWaterGauge(data.WaterGlasses))
	b.WriteString("\n" + renderProgressLine(data.Progress))
	if data.Tip != "" {
		b.WriteString("\ntip: " + data.Tip)
	}
	return strings.TrimSpace(b.String())
}

func RenderWaterGauge(glasses int) string {
	if glasses < 0 {
		glasses = 0
	}
	if glasses > model.MaxWaterGlasses {
		glasses = model.MaxWaterGlasses
	}
	full := strings.Repeat("x", glasses)
	empty := strings.Repeat(".", model.MaxWaterGlasses-glasses)
	return fmt.Sprintf("water: [%s%s] %d/%d", full, empty, glasses, model.MaxWaterGlasses)
}

func renderProgressLine(p model.Progress) string {
	field := func(label string, v *float64, unit string) string {
		if v == nil {
			return label + ": -"
		}
		return fmt.Sprintf("%s: %g%s", label, *v, unit)
	}
	return "progress: " + strings.Join([]string{
		field("weight", p.Weight, "kg"),
		field("steps", p.Steps, ""),
		field("exercise", p.Exercise, "m"),
		field("sleep", p.Sleep, "h"),
	}, " | ")
}

func RenderClassesPanel(data ClassesPanelData) string {
	var b strings.Builder
	b.WriteString("classes:\n")
	b.WriteString("actions: [j/k]move [a]add [e]edit [d]delete\n")
	empty := true
	for _, day := range data.Weekdays {
		items := data.ByWeekday[day]
		if len(items) == 0 {
			continue
		}
		empty = false
		b.WriteString(fmt.Sprintf("\n%s:\n", day))
		for _, item := range items {
			cursor := " "
			if item.Selected {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s at %s (%s)\n", cursor, item.Name, item.Time, item.Duration))
		}
	}
	if empty {
		b.WriteString("\n(no classes scheduled)\n")
	}
	if data.EditorView != "" {
		b.WriteString("\nclass-editor:\n" + data.EditorView)
	}
	return strings.TrimSpace(b.String())
}

func RenderChallengePanel(data ChallengePanelData) string {
	var b strings.Builder
	b.WriteString("90-day challenge:\n")
	b.WriteString("actions: [h/j/k/l]move [space]toggle\n")
	done := 0
	for i, completed := range data.Days {
		if i%10 == 0 {
			b.WriteString("\n")
		}
		cell := " . "
		if completed {
			cell = " x "
			done++
		}
		if i == data.Cursor {
			cell = "[" + strings.TrimSpace(cell) + "]"
		}
		b.WriteString(cell)
	}
	b.WriteString(fmt.Sprintf("\n\ncompleted: %d/%d\n", done, len(data.Days)))
	b.WriteString(fmt.Sprintf("current streak: %d | longest streak: %d", data.CurrentStreak, data.LongestStreak))
	return strings.TrimSpace(b.String())
}

func RenderHistoryPanel(data HistoryPanelData) string {
	var b strings.Builder
	b.WriteString("history:\n")
	if len(data.Rows) == 0 {
		b.WriteString("(no archived days yet)")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%-12s %-8s %-6s %s\n", "date", "tasks", "water", "weight"))
	for _, row := range data.Rows {
		weight := row.Weight
		if weight == "" {
			weight = "-"
		}
		b.WriteString(fmt.Sprintf("%-12s %2d/%-5d %d/%-4d %s\n",
			row.Date, row.TasksDone, row.TotalTasks, row.WaterGlasses, model.MaxWaterGlasses, weight))
	}
	return strings.TrimSpace(b.String())
}

func RenderStreaksPanel(data StreaksPanelData) string {
	return strings.TrimSpace(fmt.Sprintf(
		"streaks:\ncurrent: %d day(s)\nlongest: %d day(s)\nchallenge: %d/%d completed",
		data.CurrentStreak, data.LongestStreak, data.CompletedDays, data.ChallengeTotal,
	))
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
