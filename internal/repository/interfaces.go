package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bizmate/booking-api/internal/model"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// All repository interfaces in one file
type (
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		Update(ctx context.Context, user *model.User) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListSpecialists(ctx context.Context, filters *model.SpecialistFilters) ([]*model.User, error)
	}

	LocationRepository interface {
		Create(ctx context.Context, location *model.Location) error
		Get(ctx context.Context, id uuid.UUID) (*model.Location, error)
		Update(ctx context.Context, location *model.Location) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.LocationFilters) ([]*model.Location, error)
	}

	ScheduleRepository interface {
		Create(ctx context.Context, schedule *model.Schedule) error
		GetBySpecialist(ctx context.Context, specialistID uuid.UUID) (*model.Schedule, error)
		Update(ctx context.Context, schedule *model.Schedule) error
		DeleteBySpecialist(ctx context.Context, specialistID uuid.UUID) error
		List(ctx context.Context) ([]*model.Schedule, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
		// ListOverlapping returns active appointments for the specialist or
		// the location whose [start_time, end_time) intersects [start, end).
		ListOverlapping(ctx context.Context, specialistID, locationID uuid.UUID, start, end time.Time) ([]*model.Appointment, error)
		// ListForSpecialistDay returns the specialist's active appointments
		// whose start falls on the given calendar date, ordered by start time.
		ListForSpecialistDay(ctx context.Context, specialistID uuid.UUID, date time.Time) ([]*model.Appointment, error)
	}

	// TokenRepository blacklists refresh tokens on logout.
	TokenRepository interface {
		Blacklist(ctx context.Context, jti string, ttl time.Duration) error
		IsBlacklisted(ctx context.Context, jti string) (bool, error)
	}
)
