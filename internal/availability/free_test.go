package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bizmate/booking-api/internal/workhours"
)

func intervals(t *testing.T, pairs ...[2]string) []workhours.Interval {
	t.Helper()
	out := make([]workhours.Interval, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, interval(t, p[0], p[1]))
	}
	return out
}

func TestFreeIntervalsSingleAppointment(t *testing.T) {
	free := FreeIntervals(
		intervals(t, [2]string{"10:00", "20:00"}),
		intervals(t, [2]string{"12:00", "12:20"}),
	)

	assert.Equal(t, intervals(t,
		[2]string{"10:00", "12:00"},
		[2]string{"12:20", "20:00"},
	), free)
}

func TestFreeIntervalsNoAppointments(t *testing.T) {
	day := intervals(t, [2]string{"10:00", "20:00"})
	assert.Equal(t, day, FreeIntervals(day, nil))
}

func TestFreeIntervalsFullyBooked(t *testing.T) {
	free := FreeIntervals(
		intervals(t, [2]string{"10:00", "12:00"}),
		intervals(t, [2]string{"10:00", "12:00"}),
	)
	assert.Empty(t, free)
}

func TestFreeIntervalsBackToBackAppointments(t *testing.T) {
	free := FreeIntervals(
		intervals(t, [2]string{"10:00", "20:00"}),
		intervals(t,
			[2]string{"10:00", "10:30"},
			[2]string{"10:30", "11:00"},
		),
	)

	assert.Equal(t, intervals(t, [2]string{"11:00", "20:00"}), free)
}

func TestFreeIntervalsMultipleShifts(t *testing.T) {
	free := FreeIntervals(
		intervals(t,
			[2]string{"09:00", "12:00"},
			[2]string{"13:00", "18:00"},
		),
		intervals(t, [2]string{"10:00", "10:30"}),
	)

	assert.Equal(t, intervals(t,
		[2]string{"09:00", "10:00"},
		[2]string{"10:30", "12:00"},
		[2]string{"13:00", "18:00"},
	), free)
}

func TestFreeIntervalsAppointmentAtShiftStart(t *testing.T) {
	free := FreeIntervals(
		intervals(t, [2]string{"10:00", "20:00"}),
		intervals(t, [2]string{"10:00", "10:20"}),
	)

	assert.Equal(t, intervals(t, [2]string{"10:20", "20:00"}), free)
}
