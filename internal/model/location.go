package model

import (
	"github.com/bizmate/booking-api/internal/workhours"
)

// Location is a business site appointments are booked against. Deleting a
// location cascades to its appointments.
type Location struct {
	Base
	Name        string          `json:"name" db:"name"`
	Address     string          `json:"address,omitempty" db:"address"`
	WorkingTime workhours.Hours `json:"working_time" db:"working_time"`
}

type CreateLocationRequest struct {
	Name        string              `json:"name" binding:"required,max=200"`
	Address     string              `json:"address" binding:"max=250"`
	WorkingTime map[string][]string `json:"working_time" binding:"required"`
}

type UpdateLocationRequest struct {
	Name        *string             `json:"name" binding:"omitempty,max=200"`
	Address     *string             `json:"address" binding:"omitempty,max=250"`
	WorkingTime map[string][]string `json:"working_time"`
}

// LocationFilters narrows location listings.
type LocationFilters struct {
	// Working keeps only locations with at least one working day.
	Working bool `form:"working"`
}
