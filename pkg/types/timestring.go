// Package types содержит общие типы-обёртки для работы со временем слотов.
package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	layoutMinutes = "15:04"
	layoutSeconds = "15:04:05"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString is a wall-clock time carried as "HH:MM" or "HH:MM:SS".
// The booking form produces HH:MM; the CMS wire format requires HH:MM:SS.
type TimeString string

// NewTimeString extracts the HH:MM component of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layoutMinutes))
}

// NewTimeStringFromString validates s and returns it as a TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the HH:MM or HH:MM:SS shape
func (t TimeString) Validate() error {
	s := string(t)
	switch len(s) {
	case len(layoutMinutes):
		if _, err := time.Parse(layoutMinutes, s); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	case len(layoutSeconds):
		if _, err := time.Parse(layoutSeconds, s); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return nil
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// WithSeconds normalizes to HH:MM:SS, appending ":00" to HH:MM values.
// Values already carrying seconds pass through unchanged.
func (t TimeString) WithSeconds() TimeString {
	if len(t) == len(layoutSeconds) {
		return t
	}
	return t + ":00"
}

// IsBefore reports whether t is strictly earlier than other within the
// same day. Both values are compared in their HH:MM:SS form.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t.WithSeconds()) < string(other.WithSeconds())
}

func (t TimeString) String() string {
	return string(t)
}
