// Package notify holds the outbound reminder sinks: desktop
// notifications and the alert tone. Both are fire-and-forget and safe
// to leave unwired.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Notification is one outbound reminder banner.
type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

// Notifier delivers a desktop notification. Absence of a working
// backend is non-fatal; callers degrade to in-app display.
type Notifier interface {
	Send(Notification) error
}

type NoopNotifier struct{}

func (NoopNotifier) Send(Notification) error { return nil }

// ExecNotifier shells out to the platform notifier.
type ExecNotifier struct{}

func (ExecNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Sounder plays the alert tone. Failures are cosmetic and swallowed by
// callers.
type Sounder interface {
	PlayAlertTone() error
}

type NoopSounder struct{}

func (NoopSounder) PlayAlertTone() error { return nil }

// ExecSounder plays a short system sound where one is available.
type ExecSounder struct{}

func (ExecSounder) PlayAlertTone() error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("paplay", "/usr/share/sounds/freedesktop/stereo/complete.oga").Run()
	case "darwin":
		return exec.Command("afplay", "/System/Library/Sounds/Glass.aiff").Run()
	default:
		return nil
	}
}
