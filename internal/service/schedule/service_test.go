package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmate/booking-api/internal/model"
	"github.com/bizmate/booking-api/internal/repository"
	"github.com/bizmate/booking-api/internal/workhours"
)

type fakeScheduleRepo struct {
	schedules map[uuid.UUID]*model.Schedule
}

func (r *fakeScheduleRepo) Create(_ context.Context, s *model.Schedule) error {
	r.schedules[s.SpecialistID] = s
	return nil
}

func (r *fakeScheduleRepo) GetBySpecialist(_ context.Context, specialistID uuid.UUID) (*model.Schedule, error) {
	s, ok := r.schedules[specialistID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, s *model.Schedule) error {
	r.schedules[s.SpecialistID] = s
	return nil
}

func (r *fakeScheduleRepo) DeleteBySpecialist(_ context.Context, specialistID uuid.UUID) error {
	if _, ok := r.schedules[specialistID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.schedules, specialistID)
	return nil
}

func (r *fakeScheduleRepo) List(_ context.Context) ([]*model.Schedule, error) {
	var out []*model.Schedule
	for _, s := range r.schedules {
		out = append(out, s)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ListSpecialists(_ context.Context, _ *model.SpecialistFilters) ([]*model.User, error) {
	return nil, nil
}

func newFixture(t *testing.T) (*Service, *model.User, *model.User) {
	t.Helper()

	specialist := &model.User{
		Base:      model.Base{ID: uuid.New()},
		FirstName: "jane",
		LastName:  "doe",
		Role:      model.RoleSpecialist,
		IsActive:  true,
	}
	manager := &model.User{
		Base:      model.Base{ID: uuid.New()},
		FirstName: "bob",
		LastName:  "smith",
		Role:      model.RoleManager,
		IsActive:  true,
	}

	users := &fakeUserRepo{users: map[uuid.UUID]*model.User{
		specialist.ID: specialist,
		manager.ID:    manager,
	}}
	repo := &fakeScheduleRepo{schedules: map[uuid.UUID]*model.Schedule{}}
	c := cache.New(time.Minute, 10*time.Minute)

	return NewService(repo, users, c), specialist, manager
}

func weekRequest() map[string][][]string {
	return map[string][][]string{
		"Mon": {{"10:00", "13:00"}, {"14:00", "20:00"}},
		"Fri": {{"10:00", "16:00"}},
	}
}

func TestCreateSchedule(t *testing.T) {
	svc, specialist, _ := newFixture(t)
	ctx := context.Background()

	schedule, err := svc.CreateSchedule(ctx, &model.CreateScheduleRequest{
		SpecialistID: specialist.ID,
		WorkingTime:  weekRequest(),
	})
	require.NoError(t, err)

	assert.Equal(t, specialist.ID, schedule.SpecialistID)
	assert.Len(t, schedule.WorkingTime.Day(workhours.Monday), 2)
	assert.Len(t, schedule.WorkingTime.Day(workhours.Friday), 1)
	assert.Empty(t, schedule.WorkingTime.Day(workhours.Tuesday))
}

func TestCreateScheduleRejected(t *testing.T) {
	svc, specialist, manager := newFixture(t)
	ctx := context.Background()

	t.Run("not a specialist", func(t *testing.T) {
		_, err := svc.CreateSchedule(ctx, &model.CreateScheduleRequest{
			SpecialistID: manager.ID,
			WorkingTime:  weekRequest(),
		})
		var notSpecialist *model.NotSpecialistError
		require.ErrorAs(t, err, &notSpecialist)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.CreateSchedule(ctx, &model.CreateScheduleRequest{
			SpecialistID: uuid.New(),
			WorkingTime:  weekRequest(),
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("invalid working time", func(t *testing.T) {
		_, err := svc.CreateSchedule(ctx, &model.CreateScheduleRequest{
			SpecialistID: specialist.ID,
			WorkingTime: map[string][][]string{
				"Mon": {{"10:00", "13:00"}, {"12:00", "20:00"}},
			},
		})
		var validationErrs workhours.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Contains(t, validationErrs.Fields(), "Mon")
	})

	t.Run("second schedule", func(t *testing.T) {
		_, err := svc.CreateSchedule(ctx, &model.CreateScheduleRequest{
			SpecialistID: specialist.ID,
			WorkingTime:  weekRequest(),
		})
		require.NoError(t, err)

		_, err = svc.CreateSchedule(ctx, &model.CreateScheduleRequest{
			SpecialistID: specialist.ID,
			WorkingTime:  weekRequest(),
		})
		assert.ErrorIs(t, err, ErrScheduleExists)
	})
}

func TestUpdateScheduleReplacesWholeWeek(t *testing.T) {
	svc, specialist, _ := newFixture(t)
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, &model.CreateScheduleRequest{
		SpecialistID: specialist.ID,
		WorkingTime:  weekRequest(),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSchedule(ctx, specialist.ID, &model.UpdateScheduleRequest{
		WorkingTime: map[string][][]string{
			"Tue": {{"09:00", "18:00"}},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, updated.WorkingTime.Day(workhours.Monday))
	assert.Len(t, updated.WorkingTime.Day(workhours.Tuesday), 1)
}

func TestDeleteSchedule(t *testing.T) {
	svc, specialist, _ := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteSchedule(ctx, specialist.ID), repository.ErrNotFound)

	_, err := svc.CreateSchedule(ctx, &model.CreateScheduleRequest{
		SpecialistID: specialist.ID,
		WorkingTime:  weekRequest(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSchedule(ctx, specialist.ID))
	_, err = svc.GetSchedule(ctx, specialist.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
