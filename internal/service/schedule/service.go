package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/bizmate/booking-api/internal/model"
	"github.com/bizmate/booking-api/internal/repository"
	"github.com/bizmate/booking-api/internal/workhours"
)

// ErrScheduleExists is returned when a specialist already holds a schedule;
// the relation is strictly one-to-one.
var ErrScheduleExists = errors.New("schedule for this specialist already exists")

type Service struct {
	repo  repository.ScheduleRepository
	users repository.UserRepository
	cache *cache.Cache
}

func NewService(repo repository.ScheduleRepository, users repository.UserRepository, c *cache.Cache) *Service {
	return &Service{repo: repo, users: users, cache: c}
}

func CacheKey(specialistID uuid.UUID) string {
	return "schedule:" + specialistID.String()
}

// CreateSchedule attaches a weekly working time to a specialist. The user
// must hold the specialist role and must not already have a schedule.
func (s *Service) CreateSchedule(ctx context.Context, req *model.CreateScheduleRequest) (*model.Schedule, error) {
	specialist, err := s.users.Get(ctx, req.SpecialistID)
	if err != nil {
		return nil, err
	}
	if !specialist.IsSpecialist() {
		return nil, &model.NotSpecialistError{Name: specialist.FullName()}
	}

	if _, err := s.repo.GetBySpecialist(ctx, req.SpecialistID); err == nil {
		return nil, ErrScheduleExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	shifts, err := workhours.ParseShiftHours(req.WorkingTime)
	if err != nil {
		return nil, err
	}

	schedule := &model.Schedule{
		SpecialistID: req.SpecialistID,
		WorkingTime:  *shifts,
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return schedule, nil
}

func (s *Service) GetSchedule(ctx context.Context, specialistID uuid.UUID) (*model.Schedule, error) {
	return s.repo.GetBySpecialist(ctx, specialistID)
}

// UpdateSchedule replaces the whole week; schedules are immutable except
// through a full replace.
func (s *Service) UpdateSchedule(ctx context.Context, specialistID uuid.UUID, req *model.UpdateScheduleRequest) (*model.Schedule, error) {
	schedule, err := s.repo.GetBySpecialist(ctx, specialistID)
	if err != nil {
		return nil, err
	}

	shifts, err := workhours.ParseShiftHours(req.WorkingTime)
	if err != nil {
		return nil, err
	}
	schedule.WorkingTime = *shifts

	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	s.cache.Delete(CacheKey(specialistID))
	return schedule, nil
}

func (s *Service) DeleteSchedule(ctx context.Context, specialistID uuid.UUID) error {
	if err := s.repo.DeleteBySpecialist(ctx, specialistID); err != nil {
		return err
	}
	s.cache.Delete(CacheKey(specialistID))
	return nil
}

func (s *Service) ListSchedules(ctx context.Context) ([]*model.Schedule, error) {
	return s.repo.List(ctx)
}
