package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/leasing-crm/internal/domain"
	"github.com/spec-kit/leasing-crm/internal/events"
	"github.com/spec-kit/leasing-crm/internal/repository"
	apperrors "github.com/spec-kit/leasing-crm/pkg/util"
)

// FloatingAgentService manages day-by-day floating agent assignments.
type FloatingAgentService struct {
	agents     repository.AgentRepository
	members    repository.TeamMemberRepository
	floating   repository.FloatingAvailabilityRepository
	dispatcher events.Dispatcher
}

// FloatingAgentDependencies bundles collaborators for the service.
type FloatingAgentDependencies struct {
	AgentRepo    repository.AgentRepository
	MemberRepo   repository.TeamMemberRepository
	FloatingRepo repository.FloatingAvailabilityRepository
	Dispatcher   events.Dispatcher
}

// NewFloatingAgentService constructs the service.
func NewFloatingAgentService(deps FloatingAgentDependencies) *FloatingAgentService {
	return &FloatingAgentService{
		agents:     deps.AgentRepo,
		members:    deps.MemberRepo,
		floating:   deps.FloatingRepo,
		dispatcher: deps.Dispatcher,
	}
}

// SetAvailabilityInput describes one assignment mutation. A nil TeamID clears
// the agent's record for the day.
type SetAvailabilityInput struct {
	AgentID string
	Day     string
	TeamID  *string
}

// Availability returns the agent's day-to-team assignments over an inclusive
// day range.
func (s *FloatingAgentService) Availability(ctx context.Context, agentID, fromDay, toDay string) (map[string]string, error) {
	if err := s.checkAgent(ctx, agentID); err != nil {
		return nil, err
	}
	if _, err := time.Parse(domain.DateISOFormat, fromDay); err != nil {
		return nil, apperrors.NewValidationError("INCORRECT_DATE", "from must be YYYY-MM-DD")
	}
	if _, err := time.Parse(domain.DateISOFormat, toDay); err != nil {
		return nil, apperrors.NewValidationError("INCORRECT_DATE", "to must be YYYY-MM-DD")
	}

	records, err := s.floating.ListForAgent(ctx, agentID, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	assignments := make(map[string]string, len(records))
	for _, record := range records {
		assignments[record.Day] = record.TeamID
	}
	return assignments, nil
}

// SetAvailability assigns or clears the agent's coverage team for a day. The
// per-day record is unique per agent, so assigning a new team replaces any
// previous assignment for that day.
func (s *FloatingAgentService) SetAvailability(ctx context.Context, input SetAvailabilityInput) error {
	if err := s.checkAgent(ctx, input.AgentID); err != nil {
		return err
	}
	if _, err := time.Parse(domain.DateISOFormat, input.Day); err != nil {
		return apperrors.NewValidationError("INCORRECT_DATE", "day must be YYYY-MM-DD")
	}

	if input.TeamID == nil || *input.TeamID == "" {
		if err := s.floating.DeleteForDay(ctx, input.AgentID, input.Day); err != nil {
			return err
		}
		return s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAvailabilityCleared,
			SubjectID: input.AgentID,
			Actor:     events.Actor{Type: domain.SubjectTypeAgent, AgentID: &input.AgentID},
			Timestamp: time.Now().UTC(),
			Payload: events.AvailabilityClearedPayload{
				AgentID: input.AgentID,
				Day:     input.Day,
			},
		})
	}

	teamID := *input.TeamID
	if _, err := uuid.Parse(teamID); err != nil {
		return apperrors.NewValidationError("INVALID_TEAM_ID", "team id must be a uuid")
	}

	membership, err := s.members.GetActiveByTeamAndAgent(ctx, teamID, input.AgentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("TEAM_MEMBER_NOT_FOUND", "agent has no active membership in team")
		}
		return err
	}

	record := &domain.FloatingAvailability{
		TeamMemberID: membership.ID,
		AgentID:      input.AgentID,
		TeamID:       teamID,
		Day:          input.Day,
	}
	if err := s.floating.Upsert(ctx, record); err != nil {
		return err
	}

	return s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAvailabilitySet,
		SubjectID: input.AgentID,
		Actor:     events.Actor{Type: domain.SubjectTypeAgent, AgentID: &input.AgentID},
		Timestamp: time.Now().UTC(),
		Payload: events.AvailabilitySetPayload{
			AgentID: input.AgentID,
			TeamID:  teamID,
			Day:     input.Day,
		},
	})
}

func (s *FloatingAgentService) checkAgent(ctx context.Context, agentID string) error {
	if _, err := uuid.Parse(agentID); err != nil {
		return apperrors.NewValidationError("INVALID_USER_ID", "user id must be a uuid")
	}
	if _, err := s.agents.GetByID(ctx, agentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("USER_NOT_FOUND", "no agent with id "+agentID)
		}
		return err
	}
	return nil
}
