package workhours

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	parsed, err := ParseTime(s)
	require.NoError(t, err)
	return parsed
}

func dayError(t *testing.T, err error, day string) error {
	t.Helper()
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Contains(t, verrs, day)
	return verrs[day]
}

func TestParseHoursValid(t *testing.T) {
	hours, err := ParseHours(map[string][]string{
		"Mon": {"09:00", "17:00"},
		"Tue": {},
		"sat": {"10:00", "14:00"},
	})
	require.NoError(t, err)

	mon := hours.Day(Monday)
	require.Len(t, mon, 1)
	assert.Equal(t, mustTime(t, "09:00"), mon[0].Start)
	assert.Equal(t, mustTime(t, "17:00"), mon[0].End)

	assert.Empty(t, hours.Day(Tuesday))
	assert.Len(t, hours.Day(Saturday), 1)
	assert.Equal(t, 2, hours.WorkingDays())
}

func TestParseHoursUnknownDay(t *testing.T) {
	_, err := ParseHours(map[string][]string{
		"Mon":     {"09:00", "17:00"},
		"Someday": {"09:00", "17:00"},
	})
	var dayErr *DayNameError
	require.ErrorAs(t, dayError(t, err, "Someday"), &dayErr)
	assert.Equal(t, "Someday", dayErr.Day)
}

func TestParseHoursIncompleteInterval(t *testing.T) {
	_, err := ParseHours(map[string][]string{"Mon": {"09:00"}})
	var incErr *IncompleteIntervalError
	require.ErrorAs(t, dayError(t, err, "Mon"), &incErr)
}

func TestParseHoursOrdering(t *testing.T) {
	cases := map[string][]string{
		"equal":    {"09:00", "09:00"},
		"reversed": {"17:00", "09:00"},
	}
	for name, pair := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseHours(map[string][]string{"Mon": pair})
			var ordErr *OrderingError
			require.ErrorAs(t, dayError(t, err, "Mon"), &ordErr)
		})
	}
}

func TestParseHoursRounding(t *testing.T) {
	_, err := ParseHours(map[string][]string{"Mon": {"09:02", "17:00"}})
	var rndErr *RoundingError
	require.ErrorAs(t, dayError(t, err, "Mon"), &rndErr)
}

func TestParseHoursFormat(t *testing.T) {
	_, err := ParseHours(map[string][]string{"Mon": {"09:00:00", "17:00"}})
	var fmtErr *FormatError
	require.ErrorAs(t, dayError(t, err, "Mon"), &fmtErr)
	assert.Contains(t, fmtErr.Error(), "zero seconds")
}

func TestParseHoursCollectsAcrossDays(t *testing.T) {
	_, err := ParseHours(map[string][]string{
		"Mon": {"17:00", "09:00"},
		"Tue": {"10:03", "12:00"},
		"Wed": {"10:00", "12:00"},
	})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.Contains(t, verrs, "Mon")
	assert.Contains(t, verrs, "Tue")
}

func TestParseShiftHoursValid(t *testing.T) {
	shifts, err := ParseShiftHours(map[string][][]string{
		"Mon": {{"09:00", "12:00"}, {"13:00", "18:00"}},
		"Tue": {},
	})
	require.NoError(t, err)
	require.Len(t, shifts.Day(Monday), 2)
	assert.Empty(t, shifts.Day(Tuesday))
}

func TestParseShiftHoursOverlap(t *testing.T) {
	cases := map[string][][]string{
		"overlapping": {{"10:00", "12:00"}, {"11:00", "13:00"}},
		"unsorted":    {{"13:00", "18:00"}, {"09:00", "12:00"}},
		"containing":  {{"09:00", "18:00"}, {"10:00", "11:00"}},
	}
	for name, ranges := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseShiftHours(map[string][][]string{"Mon": ranges})
			var ovErr *OverlapError
			require.ErrorAs(t, dayError(t, err, "Mon"), &ovErr)
		})
	}
}

func TestParseShiftHoursAdjacentShiftsAllowed(t *testing.T) {
	_, err := ParseShiftHours(map[string][][]string{
		"Mon": {{"09:00", "12:00"}, {"12:00", "18:00"}},
	})
	assert.NoError(t, err)
}

func TestHoursJSONRoundTrip(t *testing.T) {
	hours, err := ParseHours(map[string][]string{"Mon": {"09:00", "17:00"}})
	require.NoError(t, err)

	data, err := json.Marshal(hours)
	require.NoError(t, err)

	var raw map[string][]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 7)
	assert.Equal(t, []string{"09:00", "17:00"}, raw["Mon"])
	assert.Empty(t, raw["Sun"])

	var decoded Hours
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, hours.Day(Monday), decoded.Day(Monday))
}

func TestShiftHoursJSONRejectsInvalid(t *testing.T) {
	var shifts ShiftHours
	err := json.Unmarshal([]byte(`{"Mon": [["10:00","12:00"],["11:00","13:00"]]}`), &shifts)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "Mon")
}

func TestShiftHoursScan(t *testing.T) {
	var shifts ShiftHours
	require.NoError(t, shifts.Scan([]byte(`{"Mon": [["10:00","20:00"]]}`)))
	require.Len(t, shifts.Day(Monday), 1)

	value, err := shifts.Value()
	require.NoError(t, err)
	assert.Contains(t, string(value.([]byte)), `"10:00"`)
}
