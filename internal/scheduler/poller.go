// Package scheduler polls the day's task list and fires each reminder
// phase at most once per occurrence.
package scheduler

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/model"
)

// Phase is the reminder stage for a task occurrence.
type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhaseDue      Phase = "due"
)

const (
	// UpcomingLeadMinutes is the exact time-to-task at which the
	// "upcoming" phase fires. The match is exact, not a range, so the
	// poll interval must stay well under a minute.
	UpcomingLeadMinutes = 10
	// ExpireAfterMinutes clears dedup markers once a task is this far in
	// the past, letting the same task/time fire again on a later day.
	ExpireAfterMinutes = -120

	DefaultPollInterval = 30 * time.Second
)

// FiredReminder is one emitted reminder event.
type FiredReminder struct {
	Task            model.ReminderTask
	Phase           Phase
	TimeDiffMinutes int
	At              time.Time
}

// TaskSource yields the current reminder-eligible tasks. It is invoked
// on every poll so schedule edits take effect without rewiring.
type TaskSource func() []model.ReminderTask

// Poller owns its timer: Start/Stop/Restart guarantee at most one poll
// loop is live. The dedup set lives only in memory; a process restart
// forgets what already fired today, which is accepted drift.
type Poller struct {
	interval time.Duration
	clk      clock.Clock
	source   TaskSource
	logger   *log.Logger

	mu      sync.Mutex
	fired   map[string]bool
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	out     chan FiredReminder
	dropped uint64
}

func NewPoller(interval time.Duration, clk clock.Clock, source TaskSource, logger *log.Logger, bufferSize int) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Poller{
		interval: interval,
		clk:      clk,
		source:   source,
		logger:   logger,
		fired:    make(map[string]bool),
		out:      make(chan FiredReminder, bufferSize),
	}
}

// C delivers fired reminders. The channel stays open across Restart.
func (p *Poller) C() <-chan FiredReminder {
	return p.out
}

func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.doneCh = make(chan struct{})
	go p.loop(p.stopCh, p.doneCh)
}

func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	stopCh, doneCh := p.stopCh, p.doneCh
	p.mu.Unlock()

	close(stopCh)
	<-doneCh

	p.mu.Lock()
	p.running = false
	p.mu.Unlock()
}

// Restart re-arms the poll timer, cancelling the previous loop first.
// Dedup markers survive so re-arming never refires today's reminders.
func (p *Poller) Restart() {
	p.Stop()
	p.Start()
}

// Dropped counts events discarded because the consumer lagged.
func (p *Poller) Dropped() uint64 {
	return atomic.LoadUint64(&p.dropped)
}

func (p *Poller) loop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.evaluate(p.clk.Now())
	for {
		select {
		case <-ticker.C:
			p.evaluate(p.clk.Now())
		case <-stopCh:
			return
		}
	}
}

// evaluate runs one poll pass: fire "upcoming" at exactly ten minutes
// out, "due" at exactly zero, and expire stale markers beyond two hours.
func (p *Poller) evaluate(now time.Time) {
	nowMinute := clock.MinuteOfDay(now)

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, task := range p.source() {
		taskMinute, err := clock.ParseMinuteOfDay(task.Time)
		if err != nil {
			p.logger.Warn("skipping reminder with unparseable time", "task", task.Name, "time", task.Time)
			continue
		}
		diff := taskMinute - nowMinute

		if diff == UpcomingLeadMinutes && !p.fired[dedupKey(task, PhaseUpcoming)] {
			p.fired[dedupKey(task, PhaseUpcoming)] = true
			p.emit(FiredReminder{Task: task, Phase: PhaseUpcoming, TimeDiffMinutes: diff, At: now})
		}
		if diff == 0 && !p.fired[dedupKey(task, PhaseDue)] {
			p.fired[dedupKey(task, PhaseDue)] = true
			p.emit(FiredReminder{Task: task, Phase: PhaseDue, TimeDiffMinutes: diff, At: now})
		}
		if diff < ExpireAfterMinutes {
			delete(p.fired, dedupKey(task, PhaseUpcoming))
			delete(p.fired, dedupKey(task, PhaseDue))
		}
	}
}

func (p *Poller) emit(ev FiredReminder) {
	select {
	case p.out <- ev:
	default:
		atomic.AddUint64(&p.dropped, 1)
		p.logger.Warn("dropped reminder event", "task", ev.Task.Name, "phase", ev.Phase)
	}
}

func dedupKey(task model.ReminderTask, phase Phase) string {
	return task.Name + "|" + task.Time + "|" + string(phase)
}
