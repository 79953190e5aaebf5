package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Weekdays are the only keys allowed in an opening-hours document.
var Weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Schedule maps a lowercase weekday name to that day's opening interval.
// Days without an entry are closed all day. Stored as a single JSON document
// in the restaurants table.
type Schedule map[string]DayHours

// IsOpenAt reports whether the schedule covers the given instant, using the
// instant's local weekday and zero-padded HH:MM clock time. Comparison is
// lexical on the HH:MM strings, which matches numeric comparison for valid
// times. A day whose close time sorts before its open time (an overnight
// span like 22:00-02:00) therefore never matches; that is a known limitation
// carried over from the production behavior, not something we special-case.
func (s Schedule) IsOpenAt(t time.Time) bool {
	if len(s) == 0 {
		return false
	}
	day := strings.ToLower(t.Weekday().String())
	hours, ok := s[day]
	if !ok {
		return false
	}
	now := t.Format("15:04")
	return hours.Open <= now && now <= hours.Close
}

// HoursFor returns the interval for a weekday and whether one exists.
func (s Schedule) HoursFor(day string) (DayHours, bool) {
	hours, ok := s[strings.ToLower(day)]
	return hours, ok
}

// Validate checks that every key is one of the seven weekday names and that
// every entry carries both open and close as valid 24-hour HH:MM values.
func (s Schedule) Validate() error {
	for day, hours := range s {
		if !isWeekday(day) {
			return fmt.Errorf("invalid day %q in opening hours", day)
		}
		if hours.Open == "" || hours.Close == "" {
			return fmt.Errorf("opening hours for %s must include both open and close times", day)
		}
		if !isClockTime(hours.Open) {
			return fmt.Errorf("invalid open time %q for %s, expected HH:MM", hours.Open, day)
		}
		if !isClockTime(hours.Close) {
			return fmt.Errorf("invalid close time %q for %s, expected HH:MM", hours.Close, day)
		}
	}
	return nil
}

func isWeekday(day string) bool {
	for _, d := range Weekdays {
		if day == d {
			return true
		}
	}
	return false
}

func isClockTime(value string) bool {
	if len(value) != 5 || value[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

// Value serializes the schedule for storage. A nil schedule stores NULL so
// "no hours" and "empty document" stay distinguishable.
func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan deserializes the stored JSON document.
func (s *Schedule) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into Schedule", value)
	}
}
