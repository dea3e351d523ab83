package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmate/booking-api/internal/workhours"
)

func interval(t *testing.T, start, end string) workhours.Interval {
	t.Helper()
	s, err := workhours.ParseTime(start)
	require.NoError(t, err)
	e, err := workhours.ParseTime(end)
	require.NoError(t, err)
	return workhours.Interval{Start: s, End: e}
}

func schedule(t *testing.T, raw map[string][][]string) workhours.Week {
	t.Helper()
	shifts, err := workhours.ParseShiftHours(raw)
	require.NoError(t, err)
	return shifts
}

func locationHours(t *testing.T, raw map[string][]string) workhours.Week {
	t.Helper()
	hours, err := workhours.ParseHours(raw)
	require.NoError(t, err)
	return hours
}

// monday returns a future Monday at the given wall-clock time.
func monday(hour, minute int) time.Time {
	return time.Date(2026, 10, 5, hour, minute, 0, 0, time.UTC)
}

func span(startHour, startMin, endHour, endMin int) Span {
	return Span{Start: monday(startHour, startMin), End: monday(endHour, endMin)}
}

func TestIntervalContains(t *testing.T) {
	outer := interval(t, "09:00", "17:00")

	assert.True(t, outer.Contains(interval(t, "10:00", "11:00")))
	assert.True(t, outer.Contains(interval(t, "09:00", "17:00")))
	assert.False(t, outer.Contains(interval(t, "08:00", "11:00")))
	assert.False(t, outer.Contains(interval(t, "10:00", "18:00")))
}

func TestSpanOverlaps(t *testing.T) {
	base := span(12, 0, 12, 20)

	tests := []struct {
		name  string
		other Span
		want  bool
	}{
		{"partial overlap", span(12, 10, 12, 30), true},
		{"contained", span(12, 5, 12, 15), true},
		{"containing", span(11, 0, 13, 0), true},
		{"touching before", span(11, 0, 12, 0), false},
		{"touching after", span(12, 20, 13, 0), false},
		{"disjoint", span(15, 0, 16, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestFitsScheduleFailsClosed(t *testing.T) {
	candidate := interval(t, "12:00", "12:20")

	assert.False(t, FitsSchedule(candidate, nil, workhours.Monday))

	empty := schedule(t, map[string][][]string{"Tue": {{"10:00", "20:00"}}})
	assert.False(t, FitsSchedule(candidate, empty, workhours.Monday))
}

func TestFitsScheduleMultipleShifts(t *testing.T) {
	shifts := schedule(t, map[string][][]string{
		"Mon": {{"09:00", "12:00"}, {"13:00", "18:00"}},
	})

	assert.True(t, FitsSchedule(interval(t, "10:00", "11:00"), shifts, workhours.Monday))
	assert.True(t, FitsSchedule(interval(t, "13:00", "18:00"), shifts, workhours.Monday))
	// Straddles the lunch gap, inside neither shift.
	assert.False(t, FitsSchedule(interval(t, "11:00", "14:00"), shifts, workhours.Monday))
}

func baseSlot(t *testing.T) Slot {
	t.Helper()
	return Slot{
		Span:       span(12, 0, 12, 20),
		Specialist: "Jane Doe",
		Location:   "Downtown",
		Schedule: schedule(t, map[string][][]string{
			"Mon": {{"10:00", "20:00"}},
		}),
		LocationHours: locationHours(t, map[string][]string{
			"Mon": {"09:00", "21:00"},
		}),
	}
}

func TestCheckSlotFree(t *testing.T) {
	assert.NoError(t, CheckSlot(baseSlot(t)))
}

func TestCheckSlotAlreadyBooked(t *testing.T) {
	slot := baseSlot(t)
	slot.Existing = []Span{span(12, 0, 12, 20)}
	slot.Span = span(12, 10, 12, 30)

	var bookErr *BookingError
	require.ErrorAs(t, CheckSlot(slot), &bookErr)
	assert.Equal(t, CodeAlreadyBooked, bookErr.Code)
}

func TestCheckSlotNoSchedule(t *testing.T) {
	slot := baseSlot(t)
	slot.Schedule = nil

	var bookErr *BookingError
	require.ErrorAs(t, CheckSlot(slot), &bookErr)
	assert.Equal(t, CodeNoSchedule, bookErr.Code)
	assert.Contains(t, bookErr.Message, "Jane Doe")
}

func TestCheckSlotOutsideSpecialistHours(t *testing.T) {
	slot := baseSlot(t)
	slot.Span = span(9, 0, 9, 20)

	var bookErr *BookingError
	require.ErrorAs(t, CheckSlot(slot), &bookErr)
	assert.Equal(t, CodeOutsideSpecialistHours, bookErr.Code)
	assert.Contains(t, bookErr.Message, "Jane Doe")
}

func TestCheckSlotOutsideLocationHours(t *testing.T) {
	slot := baseSlot(t)
	slot.LocationHours = locationHours(t, map[string][]string{
		"Mon": {"13:00", "21:00"},
	})

	var bookErr *BookingError
	require.ErrorAs(t, CheckSlot(slot), &bookErr)
	assert.Equal(t, CodeOutsideLocationHours, bookErr.Code)
	assert.Contains(t, bookErr.Message, "Downtown")
}

func TestCheckSlotLocationClosedThatDay(t *testing.T) {
	slot := baseSlot(t)
	slot.LocationHours = locationHours(t, map[string][]string{
		"Tue": {"09:00", "21:00"},
	})

	var bookErr *BookingError
	require.ErrorAs(t, CheckSlot(slot), &bookErr)
	assert.Equal(t, CodeOutsideLocationHours, bookErr.Code)
}

func TestCheckSlotConflictCheckedFirst(t *testing.T) {
	// A conflicting appointment wins over a missing schedule.
	slot := baseSlot(t)
	slot.Schedule = nil
	slot.Existing = []Span{span(12, 0, 12, 20)}

	var bookErr *BookingError
	require.ErrorAs(t, CheckSlot(slot), &bookErr)
	assert.Equal(t, CodeAlreadyBooked, bookErr.Code)
}
