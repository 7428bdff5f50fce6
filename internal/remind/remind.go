// Package remind turns free-text time expressions into concrete future
// instants. Reminders are recorded, not scheduled: the caller logs and
// confirms, nothing fires later.
package remind

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parse failures. ErrBadMinutes is distinct from ErrUnrecognized on purpose:
// a malformed "in X minutes" expression reports the minutes-specific failure,
// not the generic one.
var (
	ErrUnrecognized = errors.New("unrecognized time expression")
	ErrBadMinutes   = errors.New("could not parse minutes value")
	ErrPast         = errors.New("reminder time is in the past")
)

const morningHour = 9 // "tomorrow" and "next week" default to 09:00

// Parse resolves text into an instant strictly after now. Branches are tried
// in a fixed order: flexible parse, exact "2006-01-02 15:04", exact
// "2006-01-02" (midnight), "tomorrow", "next week", then "in <N> minutes".
// Whichever branch succeeds, a result at or before now fails with ErrPast.
func Parse(now time.Time, text string) (time.Time, error) {
	input := strings.TrimSpace(text)
	lower := strings.ToLower(input)

	when, err := parseExpression(now, input, lower)
	if err != nil {
		return time.Time{}, err
	}
	if !when.After(now) {
		return time.Time{}, ErrPast
	}
	return when, nil
}

func parseExpression(now time.Time, input, lower string) (time.Time, error) {
	if t, err := dateparse.ParseIn(input, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", input, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", input, now.Location()); err == nil {
		return t, nil
	}

	switch lower {
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1)).Add(morningHour * time.Hour), nil
	case "next week":
		return startOfDay(now.AddDate(0, 0, 7)).Add(morningHour * time.Hour), nil
	}

	if strings.Contains(lower, "in ") && strings.Contains(lower, "minutes") {
		raw := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(lower, "in ", ""), "minutes", ""))
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return time.Time{}, ErrBadMinutes
		}
		return now.Add(time.Duration(minutes) * time.Minute), nil
	}

	return time.Time{}, ErrUnrecognized
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
