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

func (r *scheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	query := `
		INSERT INTO schedules (id, specialist_id, working_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	schedule.ID = uuid.New()
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		schedule.ID,
		schedule.SpecialistID,
		schedule.WorkingTime,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

func (r *scheduleRepository) GetBySpecialist(ctx context.Context, specialistID uuid.UUID) (*model.Schedule, error) {
	query := `SELECT * FROM schedules WHERE specialist_id = $1`

	var schedule model.Schedule
	if err := r.db.GetContext(ctx, &schedule, query, specialistID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return &schedule, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *model.Schedule) error {
	query := `
		UPDATE schedules SET working_time = $1, updated_at = $2
		WHERE specialist_id = $3
	`
	schedule.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		schedule.WorkingTime,
		schedule.UpdatedAt,
		schedule.SpecialistID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return checkAffected(result)
}

func (r *scheduleRepository) DeleteBySpecialist(ctx context.Context, specialistID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE specialist_id = $1`, specialistID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return checkAffected(result)
}

func (r *scheduleRepository) List(ctx context.Context) ([]*model.Schedule, error) {
	var schedules []*model.Schedule
	if err := r.db.SelectContext(ctx, &schedules, `SELECT * FROM schedules ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}
