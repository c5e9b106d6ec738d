package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// Timestamps are stored as fixed-width TEXT so lexical order matches time
// order.

func Time(t time.Time) string {
	return domain.FormatTimestamp(t)
}

func NullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return domain.FormatTimestamp(*t)
}

func NullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func NullInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

func NullUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func ParseTime(s string) (time.Time, error) {
	return domain.ParseTimestamp(s)
}

func TimePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := domain.ParseTimestamp(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func IntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}

func UUIDPtr(ns sql.NullString) (*uuid.UUID, error) {
	if !ns.Valid {
		return nil, nil
	}
	id, err := uuid.Parse(ns.String)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// JSON encodes v for a TEXT column.
func JSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json column: %w", err)
	}
	return string(b), nil
}

// FromJSON decodes a TEXT column into v.
func FromJSON(s string, v any) error {
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}
