// Package clock provides wall-clock access and 12-hour time parsing.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidClockString = errors.New("clock: invalid 12-hour time string")

// Clock abstracts the wall clock so day rollover and reminder timing
// can be driven by a fake in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (f FixedClock) Now() time.Time { return f.Instant }

// ParseMinuteOfDay parses a 12-hour display string such as "9:00 AM" or
// "12:30 PM" into minutes since midnight. "12 AM" maps to hour 0 and
// "12 PM" to hour 12.
func ParseMinuteOfDay(s string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}
	period := strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}

	hhmm := strings.SplitN(fields[0], ":", 2)
	if len(hhmm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}
	hour, err := strconv.Atoi(hhmm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}
	minute, err := strconv.Atoi(hhmm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}

	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}
	return hour*60 + minute, nil
}

// MinuteOfDay returns minutes since local midnight for t.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// To24Hour converts "9:00 AM" to "09:00".
func To24Hour(s string) (string, error) {
	min, err := ParseMinuteOfDay(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60), nil
}

// To12Hour converts "21:15" to "9:15 PM".
func To12Hour(s string) (string, error) {
	hhmm := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(hhmm) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}
	hour, err := strconv.Atoi(hhmm[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}
	minute, err := strconv.Atoi(hhmm[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period), nil
}

// DateKey is the calendar-day value stored in LastResetDate and
// HistoryRecord.Date.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
