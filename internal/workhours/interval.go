package workhours

// Interval is a pair of wall-clock times with Start strictly before End.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Contains reports whether inner lies entirely within the interval.
func (i Interval) Contains(inner Interval) bool {
	return !inner.Start.Before(i.Start) && !inner.End.After(i.End)
}

// Strings renders the interval as its wire pair.
func (i Interval) Strings() []string {
	return []string{i.Start.String(), i.End.String()}
}

// parseInterval validates one day's flat time range. An empty range is a
// non-working day and yields no interval.
func parseInterval(day string, parts []string) (Interval, bool, error) {
	if len(parts) == 0 {
		return Interval{}, false, nil
	}
	if len(parts) != 2 {
		return Interval{}, false, &IncompleteIntervalError{Day: day}
	}

	start, err := ParseTime(parts[0])
	if err != nil {
		return Interval{}, false, &FormatError{Day: day, Value: parts[0], Err: err}
	}
	end, err := ParseTime(parts[1])
	if err != nil {
		return Interval{}, false, &FormatError{Day: day, Value: parts[1], Err: err}
	}

	if !start.Before(end) {
		return Interval{}, false, &OrderingError{Day: day, Start: start, End: end}
	}

	for _, t := range []TimeOfDay{start, end} {
		if !t.Rounded() {
			return Interval{}, false, &RoundingError{Day: day, Value: t}
		}
	}

	return Interval{Start: start, End: end}, true, nil
}

// validateNoOverlap checks that a day's shifts are sorted and disjoint: the
// flattened boundary points must already be in sorted order.
func validateNoOverlap(day string, intervals []Interval) error {
	points := make([]TimeOfDay, 0, len(intervals)*2)
	for _, iv := range intervals {
		points = append(points, iv.Start, iv.End)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Before(points[i-1]) {
			return &OverlapError{Day: day}
		}
	}
	return nil
}
