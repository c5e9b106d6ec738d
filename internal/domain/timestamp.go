package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the fixed-width UTC layout used for status log keys and
// stored timestamps. Fixed width makes string order equal chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DateLayout is the calendar-day layout used for date-only values.
const DateLayout = "2006-01-02"

// Clock abstracts wall-clock time so entity mutations can be tested
// deterministically.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return ClockFunc(time.Now) }

// Truncate normalizes t to UTC with millisecond precision.
func Truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// NextTimestamp returns now (UTC, ms precision) when it is strictly after
// prev, otherwise prev + 1ms.
func NextTimestamp(prev, now time.Time) time.Time {
	now = Truncate(now)
	if prev.IsZero() || now.After(prev) {
		return now
	}
	return Truncate(prev).Add(time.Millisecond)
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return Truncate(t).Format(TimestampLayout)
}

// ParseTimestamp parses a value produced by FormatTimestamp. RFC3339 values
// are accepted as well and normalized.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return Truncate(t), nil
}

// ParseDate parses user-supplied dates: RFC3339 (with or without fractional
// seconds) or YYYY-MM-DD. The result is UTC with ms precision.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Truncate(t), nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// DayOf returns the UTC calendar day of t as YYYY-MM-DD.
func DayOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// StartOfDay returns midnight UTC of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseOptionalDate trims s and parses it, recording a field error on failure.
// An empty string yields nil.
func parseOptionalDate(errs *fieldErrors, field, s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		errs.add(field, "must be an ISO-8601 date")
		return nil
	}
	return &t
}
