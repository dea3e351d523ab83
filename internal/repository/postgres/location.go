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

func (r *locationRepository) Create(ctx context.Context, location *model.Location) error {
	query := `
		INSERT INTO locations (id, name, address, working_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	location.ID = uuid.New()
	location.CreatedAt = time.Now()
	location.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		location.ID,
		location.Name,
		location.Address,
		location.WorkingTime,
		location.CreatedAt,
		location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (r *locationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	query := `SELECT * FROM locations WHERE id = $1`

	var location model.Location
	if err := r.db.GetContext(ctx, &location, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &location, nil
}

func (r *locationRepository) Update(ctx context.Context, location *model.Location) error {
	query := `
		UPDATE locations
		SET name = $1, address = $2, working_time = $3, updated_at = $4
		WHERE id = $5
	`
	location.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		location.Name,
		location.Address,
		location.WorkingTime,
		location.UpdatedAt,
		location.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	return checkAffected(result)
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return checkAffected(result)
}

func (r *locationRepository) List(ctx context.Context, filters *model.LocationFilters) ([]*model.Location, error) {
	var locations []*model.Location
	if err := r.db.SelectContext(ctx, &locations, `SELECT * FROM locations ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	if filters == nil || !filters.Working {
		return locations, nil
	}

	// Working-day filtering happens on the decoded jsonb, not in SQL: the
	// validated Hours type already knows which days carry intervals.
	working := locations[:0]
	for _, loc := range locations {
		if loc.WorkingTime.WorkingDays() > 0 {
			working = append(working, loc)
		}
	}
	return working, nil
}
