package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bizmate/booking-api/internal/model"
	"github.com/bizmate/booking-api/internal/repository"
)

type Service struct {
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository) *Service {
	return &Service{repo: repo}
}

// CreateSpecialist registers a new staff member with the specialist role.
func (s *Service) CreateSpecialist(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Patronymic:   req.Patronymic,
		Position:     req.Position,
		Bio:          req.Bio,
		Role:         model.RoleSpecialist,
		IsActive:     true,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create specialist: %w", err)
	}
	return user, nil
}

// GetSpecialist fetches a user and confirms the specialist role.
func (s *Service) GetSpecialist(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsSpecialist() {
		return nil, &model.NotSpecialistError{Name: user.FullName()}
	}
	return user, nil
}

func (s *Service) UpdateSpecialist(ctx context.Context, id uuid.UUID, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.GetSpecialist(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Patronymic != nil {
		user.Patronymic = *req.Patronymic
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update specialist: %w", err)
	}
	return user, nil
}

// DeleteSpecialist removes the user; the datastore cascades the schedule and
// appointments.
func (s *Service) DeleteSpecialist(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSpecialist(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListSpecialists(ctx context.Context, filters *model.SpecialistFilters) ([]*model.User, error) {
	return s.repo.ListSpecialists(ctx, filters)
}
