package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bizmate/booking-api/internal/model"
	"github.com/bizmate/booking-api/internal/repository"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, specialist_id, location_id, start_time, end_time, duration,
			customer_firstname, customer_lastname, customer_email, note,
			is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()
	appointment.ComputeEndTime()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.SpecialistID,
		appointment.LocationID,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Duration,
		appointment.CustomerFirstname,
		appointment.CustomerLastname,
		appointment.CustomerEmail,
		appointment.Note,
		appointment.IsActive,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = $1`

	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET specialist_id = $1, location_id = $2, start_time = $3, end_time = $4,
			duration = $5, customer_firstname = $6, customer_lastname = $7,
			customer_email = $8, note = $9, is_active = $10, updated_at = $11
		WHERE id = $12
	`
	appointment.UpdatedAt = time.Now()
	appointment.ComputeEndTime()

	result, err := r.db.ExecContext(ctx, query,
		appointment.SpecialistID,
		appointment.LocationID,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Duration,
		appointment.CustomerFirstname,
		appointment.CustomerLastname,
		appointment.CustomerEmail,
		appointment.Note,
		appointment.IsActive,
		appointment.UpdatedAt,
		appointment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return checkAffected(result)
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return checkAffected(result)
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE 1=1`
	var args []interface{}

	if filters != nil {
		if filters.SpecialistID != uuid.Nil {
			args = append(args, filters.SpecialistID)
			query += fmt.Sprintf(" AND specialist_id = $%d", len(args))
		}
		if filters.LocationID != uuid.Nil {
			args = append(args, filters.LocationID)
			query += fmt.Sprintf(" AND location_id = $%d", len(args))
		}
		if !filters.Date.IsZero() {
			args = append(args, filters.Date, filters.Date.AddDate(0, 0, 1))
			query += fmt.Sprintf(" AND start_time >= $%d AND start_time < $%d", len(args)-1, len(args))
		}
		if filters.ActiveOnly {
			query += " AND is_active"
		}
	}

	query += " ORDER BY start_time"

	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListOverlapping(ctx context.Context, specialistID, locationID uuid.UUID, start, end time.Time) ([]*model.Appointment, error) {
	// Symmetric half-open overlap test: an existing appointment conflicts
	// when it starts before the candidate ends and ends after the candidate
	// starts. Catches full containment in both directions.
	query := `
		SELECT * FROM appointments
		WHERE (specialist_id = $1 OR location_id = $2)
		  AND is_active
		  AND start_time < $4
		  AND end_time > $3
		ORDER BY start_time
	`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, specialistID, locationID, start, end); err != nil {
		return nil, fmt.Errorf("failed to list overlapping appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForSpecialistDay(ctx context.Context, specialistID uuid.UUID, date time.Time) ([]*model.Appointment, error) {
	// Completed appointments no longer occupy their slot, so only active
	// ones count as busy time. Including both could produce overlapping
	// intervals once a freed slot is rebooked.
	query := `
		SELECT * FROM appointments
		WHERE specialist_id = $1
		  AND is_active
		  AND start_time >= $2
		  AND start_time < $3
		ORDER BY start_time
	`
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, specialistID, dayStart, dayStart.AddDate(0, 0, 1)); err != nil {
		return nil, fmt.Errorf("failed to list day appointments: %w", err)
	}
	return appointments, nil
}
