package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/leasing-crm/internal/auth"
	"github.com/spec-kit/leasing-crm/internal/config"
	"github.com/spec-kit/leasing-crm/internal/domain"
	"github.com/spec-kit/leasing-crm/internal/repository"
	apperrors "github.com/spec-kit/leasing-crm/pkg/util"
)

// AuthService coordinates agent login and guest token issuance.
type AuthService struct {
	agents     repository.AgentRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, agents repository.AgentRepository) *AuthService {
	return &AuthService{
		agents:     agents,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// LoginAgent authenticates an agent by email and password.
func (s *AuthService) LoginAgent(ctx context.Context, email, password string) (*domain.Agent, string, time.Time, error) {
	agent, err := s.agents.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if !agent.Active {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("agent inactive")
	}
	if err := auth.ComparePassword(agent.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(agent.ID, domain.SubjectTypeAgent)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return agent, token, exp, nil
}

// RegisterAgent creates an agent account with a hashed password.
func (s *AuthService) RegisterAgent(ctx context.Context, name, email, password string) (*domain.Agent, error) {
	if _, err := s.agents.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("EMAIL_ALREADY_REGISTERED", "email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	agent := &domain.Agent{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
	}
	if err := s.agents.Create(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

// CreateGuestSession issues a self-service token for the guest card
// endpoints. The subject id is a throwaway uuid; guest tokens carry no
// stored identity.
func (s *AuthService) CreateGuestSession() (string, time.Time, error) {
	return s.tokenMgr.GenerateToken(uuid.NewString(), domain.SubjectTypeSelfService)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
