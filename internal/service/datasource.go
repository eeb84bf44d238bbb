package service

import (
	"context"
	"time"

	"github.com/spec-kit/leasing-crm/internal/domain"
	"github.com/spec-kit/leasing-crm/internal/repository"
	"github.com/spec-kit/leasing-crm/internal/scheduling"
)

// repositoryDataSource adapts the repository layer to the read snapshot the
// scheduling engine consumes.
type repositoryDataSource struct {
	teams        repository.TeamRepository
	members      repository.TeamMemberRepository
	events       repository.CalendarEventRepository
	appointments repository.AppointmentRepository
	floating     repository.FloatingAvailabilityRepository
}

// NewEngineDataSource builds a scheduling.DataSource backed by Postgres.
func NewEngineDataSource(
	teams repository.TeamRepository,
	members repository.TeamMemberRepository,
	events repository.CalendarEventRepository,
	appointments repository.AppointmentRepository,
	floating repository.FloatingAvailabilityRepository,
) scheduling.DataSource {
	return &repositoryDataSource{
		teams:        teams,
		members:      members,
		events:       events,
		appointments: appointments,
		floating:     floating,
	}
}

func (d *repositoryDataSource) TeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	return d.teams.GetByID(ctx, teamID)
}

func (d *repositoryDataSource) TeamsByIDs(ctx context.Context, teamIDs []string) (map[string]*domain.Team, error) {
	return d.teams.ListByIDs(ctx, teamIDs)
}

func (d *repositoryDataSource) TeamMemberships(ctx context.Context) ([]domain.TeamMembership, error) {
	return d.members.ListAll(ctx)
}

func (d *repositoryDataSource) TeamEvents(ctx context.Context, teamID string, from, to time.Time) ([]domain.CalendarEvent, error) {
	return d.events.ListTeamEventsInRange(ctx, teamID, from, to)
}

func (d *repositoryDataSource) AgentEvents(ctx context.Context, agentIDs []string, from, to time.Time) ([]domain.CalendarEvent, error) {
	if len(agentIDs) == 0 {
		return nil, nil
	}
	return d.events.ListAgentEventsInRange(ctx, agentIDs, from, to)
}

func (d *repositoryDataSource) AgentAppointments(ctx context.Context, agentIDs []string, from, to time.Time) ([]domain.Appointment, error) {
	if len(agentIDs) == 0 {
		return nil, nil
	}
	return d.appointments.ListForAgentsInRange(ctx, agentIDs, from, to)
}

func (d *repositoryDataSource) FloatingAvailability(ctx context.Context, agentIDs []string, teamID, fromDay, toDay string) ([]domain.FloatingAvailability, error) {
	if len(agentIDs) == 0 {
		return nil, nil
	}
	return d.floating.ListForAgentsAndTeam(ctx, agentIDs, teamID, fromDay, toDay)
}
