package workhours

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const clockLayout = "15:04"

// SlotStep is the granularity of all working-time boundaries and durations.
const SlotStep = 5 * time.Minute

// errUnrounded is returned when a time string carries data beyond HH:MM,
// seconds being the usual offender.
var errUnrounded = errors.New("time value must have zero seconds and minutes multiples of 5")

// TimeOfDay is a wall-clock time with minute granularity.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTime parses a strict HH:MM 24-hour clock string. Trailing data (such
// as a seconds component) is reported distinctly from unparseable input.
func ParseTime(s string) (TimeOfDay, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		var pe *time.ParseError
		if errors.As(err, &pe) && strings.Contains(pe.Message, "extra text") {
			return TimeOfDay{}, errUnrounded
		}
		return TimeOfDay{}, err
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// TimeOf truncates a datetime to its wall-clock component.
func TimeOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes() < other.minutes()
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes() > other.minutes()
}

// Rounded reports whether the minutes are a multiple of five. Seconds cannot
// survive ParseTime, so a parsed value only needs the minute check.
func (t TimeOfDay) Rounded() bool {
	return t.Minute%5 == 0
}

// RoundedTime reports whether a datetime sits on a five-minute boundary with
// zero seconds.
func RoundedTime(t time.Time) bool {
	return t.Minute()%5 == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// RoundedDuration reports whether a duration is a whole multiple of five
// minutes.
func RoundedDuration(d time.Duration) bool {
	return d%SlotStep == 0
}
