package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/leasing-crm/internal/domain"
	"github.com/spec-kit/leasing-crm/internal/events"
	"github.com/spec-kit/leasing-crm/internal/repository"
	apperrors "github.com/spec-kit/leasing-crm/pkg/util"
)

// CalendarEventService manages team and agent calendar blocks.
type CalendarEventService struct {
	events     repository.CalendarEventRepository
	dispatcher events.Dispatcher
}

// NewCalendarEventService constructs the service.
func NewCalendarEventService(repo repository.CalendarEventRepository, dispatcher events.Dispatcher) *CalendarEventService {
	return &CalendarEventService{events: repo, dispatcher: dispatcher}
}

// CreateEventInput describes a new calendar block.
type CreateEventInput struct {
	TeamID  *string
	AgentID *string
	StartAt time.Time
	EndAt   time.Time
	Kind    *domain.EventKind
}

// Create persists a calendar event. Exactly one of team and agent scope must
// be set, and the span must be non-empty.
func (s *CalendarEventService) Create(ctx context.Context, input CreateEventInput) (*domain.CalendarEvent, error) {
	teamScoped := input.TeamID != nil && *input.TeamID != ""
	agentScoped := input.AgentID != nil && *input.AgentID != ""
	if teamScoped == agentScoped {
		return nil, apperrors.NewValidationError("INVALID_EVENT_SCOPE", "exactly one of teamId and agentId must be set")
	}
	if !input.EndAt.After(input.StartAt) {
		return nil, apperrors.NewValidationError("INCORRECT_DATE", "endAt must be after startAt")
	}

	event := &domain.CalendarEvent{
		TeamID:  input.TeamID,
		AgentID: input.AgentID,
		StartAt: input.StartAt.UTC(),
		EndAt:   input.EndAt.UTC(),
		Kind:    input.Kind,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCalendarEventPosted,
		SubjectID: event.ID,
		Actor:     events.Actor{Type: domain.SubjectTypeAgent},
		Timestamp: time.Now().UTC(),
		Payload: events.CalendarEventPostedPayload{
			TeamID:  event.TeamID,
			AgentID: event.AgentID,
			StartAt: event.StartAt,
			EndAt:   event.EndAt,
		},
	}); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete soft-deletes an event so it stops blocking availability.
func (s *CalendarEventService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("INVALID_EVENT_ID", "event id must be a uuid")
	}
	return s.events.SoftDelete(ctx, id)
}
