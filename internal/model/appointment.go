package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizmate/booking-api/internal/workhours"
)

// Appointment is a customer booking against a specialist, a location and a
// time slot. EndTime is always derived from StartTime plus Duration and is
// recomputed on every save; it is never client-settable.
type Appointment struct {
	Base
	SpecialistID      uuid.UUID `json:"specialist_id" db:"specialist_id"`
	LocationID        uuid.UUID `json:"location_id" db:"location_id"`
	StartTime         time.Time `json:"start_time" db:"start_time"`
	EndTime           time.Time `json:"end_time" db:"end_time"`
	Duration          Duration  `json:"duration" db:"duration"`
	CustomerFirstname string    `json:"customer_firstname" db:"customer_firstname"`
	CustomerLastname  string    `json:"customer_lastname" db:"customer_lastname"`
	CustomerEmail     string    `json:"customer_email" db:"customer_email"`
	Note              string    `json:"note,omitempty" db:"note"`
	IsActive          bool      `json:"is_active" db:"is_active"`
}

// ComputeEndTime re-derives EndTime. Called on every create and update.
func (a *Appointment) ComputeEndTime() {
	a.EndTime = a.StartTime.Add(a.Duration.Std())
}

// MarkAsCompleted flips the appointment into its terminal completed state.
// Calling it twice is a state no-op; the second call reports false.
func (a *Appointment) MarkAsCompleted() bool {
	if !a.IsActive {
		return false
	}
	a.IsActive = false
	return true
}

// Validate enforces the invariants that do not need the datastore: a future,
// rounded start and a positive rounded duration.
func (a *Appointment) Validate(now time.Time) error {
	if !workhours.RoundedTime(a.StartTime) {
		return &RoundingError{Field: "start_time"}
	}
	if !a.StartTime.After(now) {
		return &PastDateTimeError{Field: "start_time"}
	}
	if a.Duration <= 0 || !workhours.RoundedDuration(a.Duration.Std()) {
		return &RoundingError{Field: "duration"}
	}
	return nil
}

type CreateAppointmentRequest struct {
	SpecialistID      uuid.UUID `json:"specialist" binding:"required"`
	LocationID        uuid.UUID `json:"location" binding:"required"`
	StartTime         time.Time `json:"start_time" binding:"required"`
	Duration          string    `json:"duration" binding:"required,hhmm"`
	CustomerFirstname string    `json:"customer_firstname" binding:"required,max=150"`
	CustomerLastname  string    `json:"customer_lastname" binding:"required,max=150"`
	CustomerEmail     string    `json:"customer_email" binding:"required,email"`
	Note              string    `json:"note" binding:"max=300"`
}

// UpdateAppointmentRequest is a full edit; every invariant is re-validated.
type UpdateAppointmentRequest struct {
	SpecialistID      uuid.UUID `json:"specialist" binding:"required"`
	LocationID        uuid.UUID `json:"location" binding:"required"`
	StartTime         time.Time `json:"start_time" binding:"required"`
	Duration          string    `json:"duration" binding:"required,hhmm"`
	CustomerFirstname string    `json:"customer_firstname" binding:"required,max=150"`
	CustomerLastname  string    `json:"customer_lastname" binding:"required,max=150"`
	CustomerEmail     string    `json:"customer_email" binding:"required,email"`
	Note              string    `json:"note" binding:"max=300"`
}

// AppointmentFilters narrows appointment listings.
type AppointmentFilters struct {
	SpecialistID uuid.UUID
	LocationID   uuid.UUID
	Date         time.Time
	ActiveOnly   bool
}
