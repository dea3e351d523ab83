package availability

import (
	"sort"

	"github.com/bizmate/booking-api/internal/workhours"
)

// FreeIntervals partitions a day into the gaps that remain inside working
// hours once appointments are taken out. Boundary points from both the
// schedule and the appointments are merged and sorted, then paired off; a
// pair survives when it is non-degenerate and contained in at least one
// schedule interval. Appointments are assumed disjoint from each other and
// schedule intervals sorted and disjoint, both guaranteed upstream.
func FreeIntervals(schedule, appointments []workhours.Interval) []workhours.Interval {
	points := make([]workhours.TimeOfDay, 0, (len(schedule)+len(appointments))*2)
	for _, iv := range schedule {
		points = append(points, iv.Start, iv.End)
	}
	for _, iv := range appointments {
		points = append(points, iv.Start, iv.End)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Before(points[j])
	})

	free := make([]workhours.Interval, 0, len(points)/2)
	for i := 0; i+1 < len(points); i += 2 {
		gap := workhours.Interval{Start: points[i], End: points[i+1]}
		if gap.Start == gap.End {
			continue
		}
		for _, iv := range schedule {
			if iv.Contains(gap) {
				free = append(free, gap)
				break
			}
		}
	}
	return free
}
