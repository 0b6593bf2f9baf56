package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/notify"
	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/tracker"
)

type View string

const (
	ViewToday     View = "Today"
	ViewClasses   View = "Classes"
	ViewChallenge View = "Challenge"
	ViewHistory   View = "History"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Today     string
	Classes   string
	Challenge string
	History   string
	Help      string
	Quit      string
}

type TodayState struct {
	Cursor int
}

type ClassEditorState struct {
	Active     bool
	EditingID  string // empty while adding a new class
	Weekday    time.Weekday
	FieldIndex int
	Err        string
}

type ClassesState struct {
	Cursor int
	Editor ClassEditorState
}

type ChallengeState struct {
	Cursor int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView   View
	Tracker       *tracker.Tracker
	Poller        *scheduler.Poller
	Clock         clock.Clock
	Today         TodayState
	Classes       ClassesState
	Challenge     ChallengeState
	Palette       CommandPaletteState
	HelpVisible   bool
	NotifyEnabled bool
	Notifications []notify.Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	notifier    notify.Notifier
	sounder     notify.Sounder
	dayTick     time.Duration
	reminderLog []scheduler.FiredReminder

	// Bubble components used for rich TUI controls
	todayList    list.Model
	historyTable table.Model
	commandInput textinput.Model
	editorInputs []textinput.Model
	doneProgress      progress.Model
	challengeProgress progress.Model
	helpModel         help.Model
	tipViewport       viewport.Model

	// Percentages rendered through progress.ViewAs, recomputed on sync.
	donePct      float64
	challengePct float64
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type DayTickMsg struct {
	At time.Time
}

type ReminderFiredMsg struct {
	Event scheduler.FiredReminder
}

type Option func(*Model)

func WithNotifier(n notify.Notifier) Option {
	return func(m *Model) {
		if n != nil {
			m.notifier = n
		}
	}
}

func WithSounder(s notify.Sounder) Option {
	return func(m *Model) {
		if s != nil {
			m.sounder = s
		}
	}
}

func WithPoller(p *scheduler.Poller) Option {
	return func(m *Model) { m.Poller = p }
}

func WithClock(clk clock.Clock) Option {
	return func(m *Model) {
		if clk != nil {
			m.Clock = clk
		}
	}
}

func WithDayTick(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.dayTick = d
		}
	}
}

func NewModel(tr *tracker.Tracker, opts ...Option) Model {
	m := Model{
		CurrentView:   ViewToday,
		Tracker:       tr,
		Clock:         clock.SystemClock{},
		NotifyEnabled: true,
		notifier:      notify.NoopNotifier{},
		sounder:       notify.NoopSounder{},
		dayTick:       time.Minute,
		Keys: GlobalKeyMap{
			Today:     "1",
			Classes:   "2",
			Challenge: "3",
			History:   "4",
			Help:      "?",
			Quit:      "q",
		},
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}
