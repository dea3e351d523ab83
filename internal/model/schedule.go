package model

import (
	"github.com/google/uuid"

	"github.com/bizmate/booking-api/internal/workhours"
)

// Schedule is a specialist's weekly working time, one-to-one with the
// specialist. A specialist without a schedule cannot receive appointments.
type Schedule struct {
	Base
	SpecialistID uuid.UUID            `json:"specialist_id" db:"specialist_id"`
	WorkingTime  workhours.ShiftHours `json:"working_time" db:"working_time"`
}

type CreateScheduleRequest struct {
	SpecialistID uuid.UUID             `json:"specialist" binding:"required"`
	WorkingTime  map[string][][]string `json:"working_time" binding:"required"`
}

type UpdateScheduleRequest struct {
	WorkingTime map[string][][]string `json:"working_time" binding:"required"`
}

// DayView is the free/busy partition of one working day.
type DayView struct {
	AppointmentsIntervals [][]string `json:"appointments_intervals"`
	FreeIntervals         [][]string `json:"free_intervals"`
}
