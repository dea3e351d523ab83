package workhours

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Week is a read view over a validated week of working intervals.
type Week interface {
	// Day returns the intervals for a day, empty when not working.
	Day(d Weekday) []Interval
}

type week struct {
	days [7][]Interval
}

func (w *week) Day(d Weekday) []Interval {
	if d < Monday || d > Sunday {
		return nil
	}
	return w.days[d]
}

// WorkingDays counts the days with at least one interval.
func (w *week) WorkingDays() int {
	n := 0
	for _, ivs := range w.days {
		if len(ivs) > 0 {
			n++
		}
	}
	return n
}

// validateDayNames rejects unknown keys before any per-day validation runs.
func validateDayNames[V any](raw map[string]V) ValidationErrors {
	errs := ValidationErrors{}
	for key := range raw {
		if _, err := ParseWeekday(key); err != nil {
			errs[key] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Hours is a location's working time: at most one interval per day.
// Wire shape: {"Mon": ["HH:MM","HH:MM"] | [], ...}.
type Hours struct {
	week
}

// ParseHours validates the single-shift wire shape, collecting independent
// per-day failures.
func ParseHours(raw map[string][]string) (*Hours, error) {
	if errs := validateDayNames(raw); errs != nil {
		return nil, errs
	}

	h := &Hours{}
	errs := ValidationErrors{}
	for key, parts := range raw {
		day, _ := ParseWeekday(key)
		iv, ok, err := parseInterval(day.String(), parts)
		if err != nil {
			errs[day.String()] = err
			continue
		}
		if ok {
			h.days[day] = []Interval{iv}
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return h, nil
}

func (h Hours) MarshalJSON() ([]byte, error) {
	out := make(map[string][]string, 7)
	for _, d := range Weekdays() {
		out[d.String()] = []string{}
		if ivs := h.days[d]; len(ivs) > 0 {
			out[d.String()] = ivs[0].Strings()
		}
	}
	return json.Marshal(out)
}

func (h *Hours) UnmarshalJSON(data []byte) error {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseHours(raw)
	if err != nil {
		return err
	}
	*h = *parsed
	return nil
}

// Value serializes working hours for a jsonb column.
func (h Hours) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *Hours) Scan(src interface{}) error {
	return scanJSON(src, h)
}

// ShiftHours is a specialist's working time: zero or more disjoint shifts
// per day. Wire shape: {"Mon": [["HH:MM","HH:MM"], ...] | [], ...}.
type ShiftHours struct {
	week
}

// ParseShiftHours validates the multi-shift wire shape. Shifts within a day
// must be sorted and non-overlapping.
func ParseShiftHours(raw map[string][][]string) (*ShiftHours, error) {
	if errs := validateDayNames(raw); errs != nil {
		return nil, errs
	}

	s := &ShiftHours{}
	errs := ValidationErrors{}
	for key, ranges := range raw {
		day, _ := ParseWeekday(key)
		intervals, err := parseShifts(day.String(), ranges)
		if err != nil {
			errs[day.String()] = err
			continue
		}
		s.days[day] = intervals
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return s, nil
}

func parseShifts(day string, ranges [][]string) ([]Interval, error) {
	var intervals []Interval
	for _, parts := range ranges {
		iv, ok, err := parseInterval(day, parts)
		if err != nil {
			return nil, err
		}
		if ok {
			intervals = append(intervals, iv)
		}
	}
	if err := validateNoOverlap(day, intervals); err != nil {
		return nil, err
	}
	return intervals, nil
}

func (s ShiftHours) MarshalJSON() ([]byte, error) {
	out := make(map[string][][]string, 7)
	for _, d := range Weekdays() {
		out[d.String()] = [][]string{}
		for _, iv := range s.days[d] {
			out[d.String()] = append(out[d.String()], iv.Strings())
		}
	}
	return json.Marshal(out)
}

func (s *ShiftHours) UnmarshalJSON(data []byte) error {
	var raw map[string][][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseShiftHours(raw)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

func (s ShiftHours) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ShiftHours) Scan(src interface{}) error {
	return scanJSON(src, s)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported working time column type %T", src)
	}
}
