package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/bizmate/booking-api/internal/availability"
	"github.com/bizmate/booking-api/internal/model"
	"github.com/bizmate/booking-api/internal/repository"
	locationService "github.com/bizmate/booking-api/internal/service/location"
	scheduleService "github.com/bizmate/booking-api/internal/service/schedule"
	"github.com/bizmate/booking-api/internal/workhours"
)

type Service struct {
	repo      repository.AppointmentRepository
	users     repository.UserRepository
	locations repository.LocationRepository
	schedules repository.ScheduleRepository
	cache     *cache.Cache
}

func NewService(
	repo repository.AppointmentRepository,
	users repository.UserRepository,
	locations repository.LocationRepository,
	schedules repository.ScheduleRepository,
	c *cache.Cache,
) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		locations: locations,
		schedules: schedules,
		cache:     c,
	}
}

// CreateAppointment books a slot. The availability check here is the fast
// path; the datastore's exclusion constraint settles concurrent races.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	duration, err := model.ParseAppointmentDuration(req.Duration)
	if err != nil {
		return nil, &model.RoundingError{Field: "duration"}
	}

	apt := &model.Appointment{
		SpecialistID:      req.SpecialistID,
		LocationID:        req.LocationID,
		StartTime:         req.StartTime,
		Duration:          duration,
		CustomerFirstname: req.CustomerFirstname,
		CustomerLastname:  req.CustomerLastname,
		CustomerEmail:     req.CustomerEmail,
		Note:              req.Note,
		IsActive:          true,
	}
	apt.ComputeEndTime()

	if err := apt.Validate(time.Now()); err != nil {
		return nil, err
	}
	if err := s.checkFreeSlot(ctx, apt, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

// UpdateAppointment is a full edit: every invariant is re-validated, with
// the appointment itself excluded from the conflict scan.
func (s *Service) UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	duration, err := model.ParseAppointmentDuration(req.Duration)
	if err != nil {
		return nil, &model.RoundingError{Field: "duration"}
	}

	apt.SpecialistID = req.SpecialistID
	apt.LocationID = req.LocationID
	apt.StartTime = req.StartTime
	apt.Duration = duration
	apt.CustomerFirstname = req.CustomerFirstname
	apt.CustomerLastname = req.CustomerLastname
	apt.CustomerEmail = req.CustomerEmail
	apt.Note = req.Note
	apt.ComputeEndTime()

	if err := apt.Validate(time.Now()); err != nil {
		return nil, err
	}
	if err := s.checkFreeSlot(ctx, apt, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	return s.repo.List(ctx, filters)
}

// MarkAsCompleted flips the appointment into its terminal state. Repeated
// calls succeed without further effect.
func (s *Service) MarkAsCompleted(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !apt.MarkAsCompleted() {
		return apt, nil
	}

	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to complete appointment: %w", err)
	}
	return apt, nil
}

// GetDayView partitions a specialist's day into booked and free intervals.
func (s *Service) GetDayView(ctx context.Context, specialistID uuid.UUID, date time.Time) (*model.DayView, error) {
	specialist, err := s.users.Get(ctx, specialistID)
	if err != nil {
		return nil, err
	}
	if !specialist.IsSpecialist() {
		return nil, &model.NotSpecialistError{Name: specialist.FullName()}
	}

	// Compare calendar dates in the zone the requested date carries, so a
	// server running in a non-UTC zone doesn't reject today's date.
	now := time.Now().In(date.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	if date.Before(today) {
		return nil, &model.PastDateTimeError{Field: "date"}
	}

	sched, err := s.getSchedule(ctx, specialistID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, &availability.BookingError{
			Code:    availability.CodeNoSchedule,
			Message: fmt.Sprintf("%s hasn't got a schedule yet", specialist.FullName()),
		}
	}

	dayIntervals := sched.WorkingTime.Day(workhours.WeekdayOf(date))
	if len(dayIntervals) == 0 {
		return nil, &availability.BookingError{
			Code:    availability.CodeOutsideSpecialistHours,
			Message: fmt.Sprintf("%s is not working on this day", specialist.FullName()),
		}
	}

	appointments, err := s.repo.ListForSpecialistDay(ctx, specialistID, date)
	if err != nil {
		return nil, err
	}

	booked := make([]workhours.Interval, 0, len(appointments))
	for _, apt := range appointments {
		booked = append(booked, workhours.Interval{
			Start: workhours.TimeOf(apt.StartTime),
			End:   workhours.TimeOf(apt.EndTime),
		})
	}

	view := &model.DayView{
		AppointmentsIntervals: make([][]string, 0, len(booked)),
		FreeIntervals:         [][]string{},
	}
	for _, iv := range booked {
		view.AppointmentsIntervals = append(view.AppointmentsIntervals, iv.Strings())
	}
	for _, iv := range availability.FreeIntervals(dayIntervals, booked) {
		view.FreeIntervals = append(view.FreeIntervals, iv.Strings())
	}
	return view, nil
}

// checkFreeSlot assembles the availability engine's inputs and runs the
// full booking check. excludeID skips the appointment being edited.
func (s *Service) checkFreeSlot(ctx context.Context, apt *model.Appointment, excludeID uuid.UUID) error {
	specialist, err := s.users.Get(ctx, apt.SpecialistID)
	if err != nil {
		return err
	}
	if !specialist.IsSpecialist() {
		return &model.NotSpecialistError{Name: specialist.FullName()}
	}

	location, err := s.getLocation(ctx, apt.LocationID)
	if err != nil {
		return err
	}

	sched, err := s.getSchedule(ctx, apt.SpecialistID)
	if err != nil {
		return err
	}

	existing, err := s.repo.ListOverlapping(ctx, apt.SpecialistID, apt.LocationID, apt.StartTime, apt.EndTime)
	if err != nil {
		return err
	}

	spans := make([]availability.Span, 0, len(existing))
	for _, e := range existing {
		if e.ID == excludeID {
			continue
		}
		spans = append(spans, availability.Span{Start: e.StartTime, End: e.EndTime})
	}

	slot := availability.Slot{
		Span:          availability.Span{Start: apt.StartTime, End: apt.EndTime},
		Specialist:    specialist.FullName(),
		Location:      location.Name,
		LocationHours: &location.WorkingTime,
		Existing:      spans,
	}
	if sched != nil {
		slot.Schedule = &sched.WorkingTime
	}

	return availability.CheckSlot(slot)
}

// getSchedule returns the specialist's schedule or nil when none exists,
// caching hits briefly. Write paths invalidate through the shared cache.
func (s *Service) getSchedule(ctx context.Context, specialistID uuid.UUID) (*model.Schedule, error) {
	key := scheduleService.CacheKey(specialistID)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*model.Schedule), nil
	}

	sched, err := s.schedules.GetBySpecialist(ctx, specialistID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, sched, cache.DefaultExpiration)
	return sched, nil
}

func (s *Service) getLocation(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	key := locationService.CacheKey(id)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*model.Location), nil
	}

	location, err := s.locations.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, location, cache.DefaultExpiration)
	return location, nil
}
