// Package availability decides whether a candidate appointment fits a
// specialist's schedule, a location's opening hours and the existing
// bookings. All functions are pure: they operate on data already loaded
// from the datastore and perform no I/O. The engine is the fast-path
// check; the database exclusion constraint remains the authoritative
// guard against concurrent double-booking.
package availability

import (
	"time"

	"github.com/bizmate/booking-api/internal/workhours"
)

// Span is a concrete datetime interval [Start, End).
type Span struct {
	Start time.Time
	End   time.Time
}

// Overlaps applies the symmetric half-open interval test. Spans that merely
// touch at a boundary do not overlap.
func (s Span) Overlaps(other Span) bool {
	return other.Start.Before(s.End) && s.Start.Before(other.End)
}

// Slot is a candidate appointment together with everything needed to judge
// it: display names for error messages, the specialist's schedule (nil when
// none exists), the location's opening hours, and every active appointment
// already booked for the same specialist or the same location.
type Slot struct {
	Span
	Specialist    string
	Location      string
	Schedule      workhours.Week
	LocationHours workhours.Week
	Existing      []Span
}

// FitsSchedule reports whether the candidate interval lies inside any of the
// day's working intervals. An empty day fails closed: no interval means the
// specialist does not work that day.
func FitsSchedule(candidate workhours.Interval, schedule workhours.Week, day workhours.Weekday) bool {
	if schedule == nil {
		return false
	}
	intervals := schedule.Day(day)
	if len(intervals) == 0 {
		return false
	}
	for _, iv := range intervals {
		if iv.Contains(candidate) {
			return true
		}
	}
	return false
}

// FitsLocation is FitsSchedule over a location's hours, which carry at most
// one interval per day.
func FitsLocation(candidate workhours.Interval, hours workhours.Week, day workhours.Weekday) bool {
	return FitsSchedule(candidate, hours, day)
}

// ConflictsWithExisting reports whether the candidate span overlaps any
// existing appointment.
func ConflictsWithExisting(candidate Span, existing []Span) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}

// CheckSlot runs the full availability check for a candidate booking and
// returns a BookingError naming the first rule that failed, or nil when the
// slot is free.
func CheckSlot(slot Slot) error {
	if ConflictsWithExisting(slot.Span, slot.Existing) {
		return alreadyBooked()
	}

	if slot.Schedule == nil {
		return noSchedule(slot.Specialist)
	}

	day := workhours.WeekdayOf(slot.Start)
	candidate := workhours.Interval{
		Start: workhours.TimeOf(slot.Start),
		End:   workhours.TimeOf(slot.End),
	}

	if !FitsSchedule(candidate, slot.Schedule, day) {
		return outsideSpecialistHours(slot.Specialist)
	}

	if !FitsLocation(candidate, slot.LocationHours, day) {
		return outsideLocationHours(slot.Location)
	}

	return nil
}
