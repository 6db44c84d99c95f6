package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// TimeOfDay wraps a TIME column so every endpoint renders it the same way:
// zero-padded 24-hour "HH:MM:SS", decomposed from seconds of day.
type TimeOfDay struct {
	pgtype.Time
}

// ParseTimeOfDay accepts "15:04:05" or "15:04" clock strings.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	layout := "15:04:05"
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	secs := int64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	return TimeOfDay{pgtype.Time{Microseconds: secs * 1_000_000, Valid: true}}, nil
}

// String renders the clock value as zero-padded "HH:MM:SS".
func (t TimeOfDay) String() string {
	total := t.Microseconds / 1_000_000
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// MarshalJSON renders the value as a "HH:MM:SS" string, or null when unset.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// Date wraps a DATE column and renders it as an ISO-8601 date string.
type Date struct {
	pgtype.Date
}

// ParseDate accepts "2006-01-02" date strings.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{pgtype.Date{Time: t, Valid: true}}, nil
}

// MarshalJSON renders the value as "YYYY-MM-DD", or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}

// OptionalID is a nullable integer foreign key parsed permissively from JSON:
// absence, null, "" and the literal "null" all mean unset; numbers and numeric
// strings set the id; anything else is a malformed request.
type OptionalID struct {
	Int32 int32
	Valid bool
}

// UnmarshalJSON implements the permissive parse.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Int32, o.Valid = 0, false

	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		inner = strings.TrimSpace(inner)
		if inner == "" || inner == "null" {
			return nil
		}
		n, err := strconv.ParseInt(inner, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", inner, err)
		}
		o.Int32, o.Valid = int32(n), true
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", s, err)
	}
	o.Int32, o.Valid = int32(n), true
	return nil
}

// Ptr returns the id as a nullable pointer for SQL parameters.
func (o OptionalID) Ptr() *int32 {
	if !o.Valid {
		return nil
	}
	v := o.Int32
	return &v
}
