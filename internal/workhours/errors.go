package workhours

import (
	"fmt"
	"sort"
	"strings"
)

// DayNameError reports a week key outside Mon..Sun.
type DayNameError struct {
	Day string
}

func (e *DayNameError) Error() string {
	return fmt.Sprintf("%q is not a valid week day name", e.Day)
}

// FormatError reports a time string that does not parse as HH:MM.
type FormatError struct {
	Day   string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: invalid time value %q: %v", e.Day, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// IncompleteIntervalError reports a time range that is neither empty nor a
// full start/end pair.
type IncompleteIntervalError struct {
	Day string
}

func (e *IncompleteIntervalError) Error() string {
	return fmt.Sprintf("%s: time range must contain start and end time together or be empty", e.Day)
}

// OrderingError reports an interval whose start is not strictly before its end.
type OrderingError struct {
	Day   string
	Start TimeOfDay
	End   TimeOfDay
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("%s: start time %s must be before end time %s", e.Day, e.Start, e.End)
}

// RoundingError reports a time whose minutes are not a multiple of five.
type RoundingError struct {
	Day   string
	Value TimeOfDay
}

func (e *RoundingError) Error() string {
	return fmt.Sprintf("%s: time value %s must have zero seconds and minutes multiples of 5", e.Day, e.Value)
}

// OverlapError reports two shifts on the same day that intersect or are out
// of order.
type OverlapError struct {
	Day string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s: working time intervals overlap or are out of order", e.Day)
}

// ValidationErrors aggregates per-day failures of a whole-week validation.
// Validation is fail-fast within a day and collects across days.
type ValidationErrors map[string]error

func (ve ValidationErrors) Error() string {
	keys := make([]string, 0, len(ve))
	for k := range ve {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, ve[k].Error())
	}
	return strings.Join(parts, "; ")
}

// Fields returns the per-day messages keyed by day name, for API responses.
func (ve ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(ve))
	for day, err := range ve {
		fields[day] = err.Error()
	}
	return fields
}
