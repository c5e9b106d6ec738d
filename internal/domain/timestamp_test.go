package domain

import (
	"testing"
	"time"
)

func TestNextTimestamp(t *testing.T) {
	t.Parallel()

	prev := time.Date(2024, 5, 1, 10, 0, 0, 500_000_000, time.UTC)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want time.Time
	}{
		{name: "zero prev", prev: time.Time{}, now: prev, want: prev},
		{name: "clock advanced", prev: prev, now: prev.Add(time.Second), want: prev.Add(time.Second)},
		{name: "same millisecond", prev: prev, now: prev.Add(300 * time.Microsecond), want: prev.Add(time.Millisecond)},
		{name: "clock went backwards", prev: prev, now: prev.Add(-time.Hour), want: prev.Add(time.Millisecond)},
		{name: "non-UTC now", prev: prev, now: prev.Add(time.Minute).In(time.FixedZone("X", 3600)), want: prev.Add(time.Minute)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NextTimestamp(tt.prev, tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("NextTimestamp = %v, want %v", got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("location = %v, want UTC", got.Location())
			}
		})
	}
}

func TestFormatParseTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 2, 3, 4, 5, 6_789_000, time.UTC)
	s := FormatTimestamp(ts)
	if s != "2024-01-02T03:04:05.006Z" {
		t.Errorf("FormatTimestamp = %q", s)
	}
	got, err := ParseTimestamp(s)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(Truncate(ts)) {
		t.Errorf("ParseTimestamp = %v", got)
	}
	if _, err := ParseTimestamp("2024-01-02T04:04:05+01:00"); err != nil {
		t.Errorf("RFC3339 should parse: %v", err)
	}
	if _, err := ParseTimestamp("soon"); err == nil {
		t.Error("expected error")
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2024-01-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{input: "2024-01-01T00:00:00.000Z", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{input: " 2024-01-01T10:00:00+02:00 ", want: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		{input: "", wantErr: true},
		{input: "2024/01/01", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDayHelpers(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 10, 23, 30, 0, 0, time.FixedZone("X", -2*3600))
	if got := DayOf(ts); got != "2024-03-11" {
		t.Errorf("DayOf = %q", got)
	}
	if got := StartOfDay(ts); !got.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay = %v", got)
	}
}
