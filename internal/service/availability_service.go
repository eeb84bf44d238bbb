package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/leasing-crm/internal/repository"
	"github.com/spec-kit/leasing-crm/internal/scheduling"
	apperrors "github.com/spec-kit/leasing-crm/pkg/util"
)

// AvailabilityResult is the guest-facing calendar for one request.
type AvailabilityResult struct {
	PropertyTimezone string                   `json:"propertyTimezone"`
	Calendar         []scheduling.DayCalendar `json:"calendar"`
}

// AvailabilityService resolves a marketing program to its team and property
// and runs the slot engine over the requested window.
type AvailabilityService struct {
	programs   repository.ProgramRepository
	properties repository.PropertyRepository
	engine     *scheduling.Engine
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// AvailabilityDependencies bundles collaborators for the service.
type AvailabilityDependencies struct {
	ProgramRepo  repository.ProgramRepository
	PropertyRepo repository.PropertyRepository
	Engine       *scheduling.Engine
	Cache        *redis.Client
	CacheTTL     time.Duration
	Logger       *zap.Logger
}

// NewAvailabilityService constructs the service.
func NewAvailabilityService(deps AvailabilityDependencies) *AvailabilityService {
	return &AvailabilityService{
		programs:   deps.ProgramRepo,
		properties: deps.PropertyRepo,
		engine:     deps.Engine,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		logger:     deps.Logger,
		now:        time.Now,
	}
}

// AvailableSlots computes the bookable calendar for the team behind the
// program email. Responses may be served from cache for up to the configured
// TTL; staleness within that bound is acceptable for a read-only view.
func (s *AvailabilityService) AvailableSlots(ctx context.Context, programEmail, from string, numberOfDays int) (*AvailabilityResult, error) {
	if programEmail == "" {
		return nil, apperrors.NewValidationError("MISSING_PROGRAM_EMAIL_OR_SESSION_ID", "program email is required")
	}
	if numberOfDays < 1 {
		return nil, apperrors.NewValidationError("INVALID_NUMBER_OF_DAYS", "number of days must be at least 1")
	}
	// format check up front; the property timezone only changes how a valid
	// value is interpreted, not whether it is valid
	if _, err := scheduling.ParseDateOrDateTime(from, time.UTC); err != nil {
		return nil, apperrors.NewValidationError("INCORRECT_FROM_DATE", "from must be YYYY-MM-DD or RFC3339")
	}

	cacheKey := fmt.Sprintf("avail:%s:%s:%d", programEmail, from, numberOfDays)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	program, err := s.programs.GetByEmailIdentifier(ctx, programEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("PROGRAM_NOT_FOUND", "no program for email "+programEmail)
		}
		return nil, err
	}

	property, err := s.properties.GetByID(ctx, program.PropertyID)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(property.Timezone)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	start, err := scheduling.ParseDateOrDateTime(from, loc)
	if err != nil {
		return nil, apperrors.NewValidationError("INCORRECT_FROM_DATE", "from must be YYYY-MM-DD or RFC3339")
	}

	calendar, err := s.engine.TeamCalendar(ctx, program.TeamID, start, numberOfDays, loc, s.now())
	if err != nil {
		return nil, err
	}

	result := &AvailabilityResult{
		PropertyTimezone: property.Timezone,
		Calendar:         calendar,
	}
	s.toCache(ctx, cacheKey, result)
	return result, nil
}

func (s *AvailabilityService) fromCache(ctx context.Context, key string) *AvailabilityResult {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("availability cache read failed", zap.Error(err))
		}
		return nil
	}
	var result AvailabilityResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}
	return &result
}

func (s *AvailabilityService) toCache(ctx context.Context, key string, result *AvailabilityResult) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("availability cache write failed", zap.Error(err))
	}
}
