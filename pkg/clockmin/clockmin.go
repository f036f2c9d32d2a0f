// Package clockmin converts between minute-of-day integers and "HH:MM" clock
// strings. The planning model tracks time-of-day only, so every time value in
// the API is either a plain minute count in [0, 1440] or a 24h clock string.
package clockmin

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every minute-of-day value.
const MinutesPerDay = 1440

// Parse converts a clock value to minutes-of-day. It accepts either a plain
// integer string ("510") or a 24h "HH:MM" string ("08:30").
func Parse(value string) (int, error) {
	text := strings.TrimSpace(value)
	if text == "" {
		return 0, fmt.Errorf("empty time value")
	}

	if hoursStr, minutesStr, ok := strings.Cut(text, ":"); ok {
		hours, err := strconv.Atoi(hoursStr)
		if err != nil {
			return 0, fmt.Errorf("invalid hours in %q: %w", value, err)
		}
		minutes, err := strconv.Atoi(minutesStr)
		if err != nil {
			return 0, fmt.Errorf("invalid minutes in %q: %w", value, err)
		}
		if hours < 0 || minutes < 0 || minutes > 59 {
			return 0, fmt.Errorf("clock value %q out of range", value)
		}
		total := hours*60 + minutes
		if total > MinutesPerDay {
			return 0, fmt.Errorf("clock value %q exceeds end of day", value)
		}
		return total, nil
	}

	total, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid time value %q: %w", value, err)
	}
	if total < 0 || total > MinutesPerDay {
		return 0, fmt.Errorf("minute value %d out of range [0, %d]", total, MinutesPerDay)
	}
	return total, nil
}

// Format renders a minute-of-day as a zero-padded "HH:MM" string.
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
