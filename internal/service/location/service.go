package location

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/bizmate/booking-api/internal/model"
	"github.com/bizmate/booking-api/internal/repository"
	"github.com/bizmate/booking-api/internal/workhours"
)

type Service struct {
	repo  repository.LocationRepository
	cache *cache.Cache
}

func NewService(repo repository.LocationRepository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

func CacheKey(id uuid.UUID) string {
	return "location:" + id.String()
}

// CreateLocation validates the working time at the boundary and persists the
// location.
func (s *Service) CreateLocation(ctx context.Context, req *model.CreateLocationRequest) (*model.Location, error) {
	hours, err := workhours.ParseHours(req.WorkingTime)
	if err != nil {
		return nil, err
	}

	location := &model.Location{
		Name:        req.Name,
		Address:     req.Address,
		WorkingTime: *hours,
	}

	if err := s.repo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

func (s *Service) GetLocation(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	return s.repo.Get(ctx, id)
}

// UpdateLocation replaces fields; working time is only replaced whole, never
// patched per day.
func (s *Service) UpdateLocation(ctx context.Context, id uuid.UUID, req *model.UpdateLocationRequest) (*model.Location, error) {
	location, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.WorkingTime != nil {
		hours, err := workhours.ParseHours(req.WorkingTime)
		if err != nil {
			return nil, err
		}
		location.WorkingTime = *hours
	}

	if err := s.repo.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	s.cache.Delete(CacheKey(id))
	return location, nil
}

func (s *Service) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(CacheKey(id))
	return nil
}

func (s *Service) ListLocations(ctx context.Context, filters *model.LocationFilters) ([]*model.Location, error) {
	return s.repo.List(ctx, filters)
}
