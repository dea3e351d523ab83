package workhours

import (
	"strings"
	"time"
)

// Weekday is a day of the working week, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return dayNames[d]
}

// ParseWeekday resolves a three-letter day key, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	key := strings.ToLower(s)
	for i, name := range dayNames {
		if strings.ToLower(name) == key {
			return Weekday(i), nil
		}
	}
	return 0, &DayNameError{Day: s}
}

// WeekdayOf maps a calendar date onto the working week.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Sunday:
		return Sunday
	default:
		return Weekday(int(t.Weekday()) - 1)
	}
}

// Weekdays lists all days in week order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}
