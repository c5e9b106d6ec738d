package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ApplicationStatus is an immutable (category, label) pair with an optional note.
type ApplicationStatus struct {
	Category StatusCategory `json:"category"`
	Label    string         `json:"label"`
	Note     *string        `json:"note,omitempty"`
}

// ActiveStatus returns an active status with the given label.
func ActiveStatus(label string) ApplicationStatus {
	return ApplicationStatus{Category: StatusCategoryActive, Label: label}
}

// InactiveStatus returns an inactive status with the given label.
func InactiveStatus(label string) ApplicationStatus {
	return ApplicationStatus{Category: StatusCategoryInactive, Label: label}
}

// Validate checks the category and label. The label is not checked against
// the pipeline config.
func (s ApplicationStatus) Validate() error {
	var errs fieldErrors
	if !s.Category.IsValid() {
		errs.add("status.category", "must be active or inactive")
	}
	if strings.TrimSpace(s.Label) == "" {
		errs.add("status.label", "required")
	}
	return errs.err()
}

// normalized returns a copy with label and note trimmed. A blank note is dropped.
func (s ApplicationStatus) normalized() ApplicationStatus {
	out := ApplicationStatus{
		Category: s.Category,
		Label:    strings.TrimSpace(s.Label),
	}
	if s.Note != nil {
		if note := strings.TrimSpace(*s.Note); note != "" {
			out.Note = &note
		}
	}
	return out
}

// Is reports whether the status carries the given label (case-insensitive).
func (s ApplicationStatus) Is(label string) bool {
	return strings.EqualFold(s.Label, label)
}

// StatusLogEntry records one status transition.
type StatusLogEntry struct {
	Timestamp time.Time
	Status    ApplicationStatus
}

// StatusLog is the append-only status history of an application. Entries are
// stored in strictly increasing timestamp order.
type StatusLog []StatusLogEntry

// Current returns the latest status. ok is false for an empty log.
func (l StatusLog) Current() (ApplicationStatus, bool) {
	if len(l) == 0 {
		return ApplicationStatus{}, false
	}
	return l[len(l)-1].Status, true
}

// Last returns the timestamp of the latest entry, or the zero time.
func (l StatusLog) Last() time.Time {
	if len(l) == 0 {
		return time.Time{}
	}
	return l[len(l)-1].Timestamp
}

// appended returns a new log with the entry added. The timestamp must be
// strictly after the latest entry.
func (l StatusLog) appended(ts time.Time, status ApplicationStatus) (StatusLog, error) {
	ts = Truncate(ts)
	if len(l) > 0 && !ts.After(l.Last()) {
		return nil, fmt.Errorf("status log: timestamp %s not after %s",
			FormatTimestamp(ts), FormatTimestamp(l.Last()))
	}
	out := make(StatusLog, len(l), len(l)+1)
	copy(out, l)
	return append(out, StatusLogEntry{Timestamp: ts, Status: status}), nil
}

// Clone returns a deep copy of the log.
func (l StatusLog) Clone() StatusLog {
	if l == nil {
		return nil
	}
	out := make(StatusLog, len(l))
	for i, e := range l {
		out[i] = StatusLogEntry{Timestamp: e.Timestamp, Status: e.Status}
		if e.Status.Note != nil {
			note := *e.Status.Note
			out[i].Status.Note = &note
		}
	}
	return out
}

// MarshalJSON encodes the log as an object keyed by timestamp, in log order.
func (l StatusLog) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range l {
		if i > 0 {
			b.WriteByte(',')
		}
		key, _ := json.Marshal(FormatTimestamp(e.Timestamp))
		val, err := json.Marshal(e.Status)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// UnmarshalJSON decodes the timestamp-keyed object and orders entries
// chronologically regardless of key order in the document.
func (l *StatusLog) UnmarshalJSON(data []byte) error {
	var raw map[string]ApplicationStatus
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("status log: %w", err)
	}
	if raw == nil {
		*l = nil
		return nil
	}

	out := make(StatusLog, 0, len(raw))
	for key, status := range raw {
		ts, err := ParseTimestamp(key)
		if err != nil {
			return fmt.Errorf("status log: %w", err)
		}
		out = append(out, StatusLogEntry{Timestamp: ts, Status: status})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })

	for i := 1; i < len(out); i++ {
		if !out[i].Timestamp.After(out[i-1].Timestamp) {
			return fmt.Errorf("status log: duplicate timestamp %s", FormatTimestamp(out[i].Timestamp))
		}
	}

	*l = out
	return nil
}
