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
	"github.com/spec-kit/leasing-crm/internal/scheduling"
	apperrors "github.com/spec-kit/leasing-crm/pkg/util"
)

// BookingService books tour appointments against computed availability.
type BookingService struct {
	programs     repository.ProgramRepository
	properties   repository.PropertyRepository
	appointments repository.AppointmentRepository
	engine       *scheduling.Engine
	dispatcher   events.Dispatcher
	now          func() time.Time
}

// BookingDependencies bundles collaborators for the service.
type BookingDependencies struct {
	ProgramRepo     repository.ProgramRepository
	PropertyRepo    repository.PropertyRepository
	AppointmentRepo repository.AppointmentRepository
	Engine          *scheduling.Engine
	Dispatcher      events.Dispatcher
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		programs:     deps.ProgramRepo,
		properties:   deps.PropertyRepo,
		appointments: deps.AppointmentRepo,
		engine:       deps.Engine,
		dispatcher:   deps.Dispatcher,
		now:          time.Now,
	}
}

// BookInput describes a booking request.
type BookInput struct {
	ProgramEmail string
	StartAt      string // RFC3339
	PartyRef     string
}

// Book re-checks the requested slot against live data, assigns the first
// free agent and persists the appointment. The availability cache is not
// consulted; bookings always see current state.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*domain.Appointment, error) {
	if input.ProgramEmail == "" {
		return nil, apperrors.NewValidationError("MISSING_PROGRAM_EMAIL_OR_SESSION_ID", "program email is required")
	}
	if input.PartyRef == "" {
		return nil, apperrors.NewValidationError("MISSING_PARTY_REF", "party reference is required")
	}

	startAt, err := time.Parse(time.RFC3339, input.StartAt)
	if err != nil {
		return nil, apperrors.NewValidationError("INCORRECT_DATE", "startDate must be RFC3339")
	}

	program, err := s.programs.GetByEmailIdentifier(ctx, input.ProgramEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("PROGRAM_NOT_FOUND", "no program for email "+input.ProgramEmail)
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

	local := startAt.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if local.Sub(midnight)%s.engine.SlotDuration() != 0 {
		return nil, apperrors.NewValidationError("INCORRECT_DATE", "startDate must align to a slot boundary")
	}

	agentID, err := s.engine.AgentForSlot(ctx, program.TeamID, startAt, loc, s.now())
	if err != nil {
		if errors.Is(err, scheduling.ErrSlotUnavailable) {
			return nil, apperrors.NewPreconditionFailed("SLOT_NOT_AVAILABLE", "requested slot is no longer available")
		}
		return nil, err
	}

	appointment := &domain.Appointment{
		AgentID:  agentID,
		PartyRef: input.PartyRef,
		StartAt:  startAt.UTC(),
		EndAt:    startAt.Add(s.engine.SlotDuration()).UTC(),
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAppointmentBooked,
		SubjectID: appointment.ID,
		Actor:     events.Actor{Type: domain.SubjectTypeSelfService},
		Timestamp: time.Now().UTC(),
		Payload: events.AppointmentBookedPayload{
			AgentID:  agentID,
			TeamID:   program.TeamID,
			PartyRef: input.PartyRef,
			StartAt:  appointment.StartAt,
			EndAt:    appointment.EndAt,
		},
	}); err != nil {
		return nil, err
	}
	return appointment, nil
}
