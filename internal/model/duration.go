package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bizmate/booking-api/internal/workhours"
)

// Duration is an appointment length, accepted and rendered as "HH:MM".
// Stored as nanoseconds in a bigint column.
type Duration time.Duration

// ParseAppointmentDuration parses an "HH:MM" duration string.
func ParseAppointmentDuration(s string) (Duration, error) {
	t, err := workhours.ParseTime(s)
	if err != nil {
		return 0, err
	}
	return Duration(time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute), nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	total := int(d.Std().Minutes())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAppointmentDuration(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Duration) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *Duration) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*d = Duration(v)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported duration column type %T", src)
	}
}
