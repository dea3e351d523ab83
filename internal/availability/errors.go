package availability

import "fmt"

// Code discriminates why a booking request was rejected.
type Code string

const (
	CodeAlreadyBooked          Code = "already_booked"
	CodeNoSchedule             Code = "no_schedule"
	CodeOutsideSpecialistHours Code = "outside_specialist_hours"
	CodeOutsideLocationHours   Code = "outside_location_hours"
)

// BookingError is a rejection from the availability engine. It is a business
// rule violation, never a process failure.
type BookingError struct {
	Code    Code
	Message string
}

func (e *BookingError) Error() string { return e.Message }

func alreadyBooked() *BookingError {
	return &BookingError{
		Code:    CodeAlreadyBooked,
		Message: "appointments have already been created for this time",
	}
}

func noSchedule(specialist string) *BookingError {
	return &BookingError{
		Code:    CodeNoSchedule,
		Message: fmt.Sprintf("%s hasn't got a schedule yet", specialist),
	}
}

func outsideSpecialistHours(specialist string) *BookingError {
	return &BookingError{
		Code:    CodeOutsideSpecialistHours,
		Message: fmt.Sprintf("%s doesn't work at this time interval", specialist),
	}
}

func outsideLocationHours(location string) *BookingError {
	return &BookingError{
		Code:    CodeOutsideLocationHours,
		Message: fmt.Sprintf("%s doesn't work at this time interval", location),
	}
}
