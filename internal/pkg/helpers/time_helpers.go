package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DateLayout is the wire format for calendar dates
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format for times of day
	ClockLayout = "15:04"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a calendar date in DateLayout
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// ParseClock validates a time of day in ClockLayout and returns it normalized
func ParseClock(value string) (string, error) {
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	return t.Format(ClockLayout), nil
}
