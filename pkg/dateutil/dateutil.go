package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

// ParseDMY parses a day/month/year triple such as "11/8/-3113" or "21.12.2012".
// The year may be negative (astronomical numbering). Ranges are not checked.
func ParseDMY(s string) (day, month, year int, err error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '/' || r == '.' || r == ' '
	})
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: expected D/M/Y", s)
	}

	values, err := ParseInts(fields)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return values[0], values[1], values[2], nil
}

// ParseDate parses an ISO date (YYYY-MM-DD) or a D/M/Y triple
func ParseDate(dateStr string) (day, month, year int, err error) {
	if t, perr := time.Parse("2006-01-02", dateStr); perr == nil {
		return t.Day(), int(t.Month()), t.Year(), nil
	}
	return ParseDMY(dateStr)
}

// ParseInts converts every field to an int, reporting the first bad one
func ParseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
