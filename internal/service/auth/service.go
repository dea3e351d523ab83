package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bizmate/booking-api/internal/model"
	"github.com/bizmate/booking-api/internal/repository"
	"github.com/bizmate/booking-api/pkg/auth"
)

type Service struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	jwt    *auth.Manager
}

func NewService(users repository.UserRepository, tokens repository.TokenRepository, jwt *auth.Manager) *Service {
	return &Service{users: users, tokens: tokens, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid, non-blacklisted refresh token for a new pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidCredentials, err)
	}

	blacklisted, err := s.tokens.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, fmt.Errorf("%w: token revoked", model.ErrInvalidCredentials)
	}

	user, err := s.users.Get(ctx, claims.UserID)
	if err != nil || !user.IsActive {
		return nil, model.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Logout blacklists the refresh token for the remainder of its lifetime.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidCredentials, err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	return s.tokens.Blacklist(ctx, claims.ID, ttl)
}

func (s *Service) ValidateAccessToken(token string) (*auth.TokenClaims, error) {
	return s.jwt.ValidateAccessToken(token)
}

func (s *Service) issueTokens(user *model.User) (*model.TokenResponse, error) {
	access, err := s.jwt.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &model.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}
