// Package timeutil handles the day-granularity dates the habit services
// exchange. Days travel as "YYYY-MM-DD" strings and the canonical "today" is
// the current UTC calendar day for every service.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const DayLayout = "2006-01-02"

// DateAtLocation truncates a moment to midnight of its calendar day in the
// given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func FormatDay(value time.Time) string {
	return value.Format(DayLayout)
}

func ParseDay(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	parsed, err := time.ParseInLocation(DayLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", trimmed, err)
	}
	return parsed, nil
}

// Today returns the canonical current day shared by all services.
func Today() string {
	return FormatDay(DateAtLocation(time.Now(), time.UTC))
}
