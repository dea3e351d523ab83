package model

import "fmt"

// NotSpecialistError reports a user referenced where a specialist is
// required.
type NotSpecialistError struct {
	Name string
}

func (e *NotSpecialistError) Error() string {
	return fmt.Sprintf("user %s is not a specialist", e.Name)
}

// PastDateTimeError reports a datetime that must be in the future but is not.
type PastDateTimeError struct {
	Field string
}

func (e *PastDateTimeError) Error() string {
	return fmt.Sprintf("%s must be in the future", e.Field)
}

// RoundingError reports a datetime or duration off the five-minute grid.
type RoundingError struct {
	Field string
}

func (e *RoundingError) Error() string {
	return fmt.Sprintf("%s must have zero seconds and minutes multiples of 5", e.Field)
}
