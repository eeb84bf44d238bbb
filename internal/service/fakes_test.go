package service

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

type fakeAgentRepo struct {
	agents map[string]*domain.Agent
}

func (f *fakeAgentRepo) Create(_ context.Context, agent *domain.Agent) error {
	agent.ID = "agent-" + strconv.Itoa(len(f.agents)+1)
	f.agents[agent.ID] = agent
	return nil
}

func (f *fakeAgentRepo) GetByID(_ context.Context, id string) (*domain.Agent, error) {
	agent, ok := f.agents[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return agent, nil
}

func (f *fakeAgentRepo) GetByEmail(_ context.Context, email string) (*domain.Agent, error) {
	for _, agent := range f.agents {
		if agent.Email == email {
			return agent, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeMemberRepo struct {
	memberships []domain.TeamMembership
}

func (f *fakeMemberRepo) Create(_ context.Context, member *domain.TeamMembership) error {
	f.memberships = append(f.memberships, *member)
	return nil
}

func (f *fakeMemberRepo) ListAll(_ context.Context) ([]domain.TeamMembership, error) {
	return f.memberships, nil
}

func (f *fakeMemberRepo) ListByAgent(_ context.Context, agentID string) ([]domain.TeamMembership, error) {
	var out []domain.TeamMembership
	for _, m := range f.memberships {
		if m.AgentID == agentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMemberRepo) GetActiveByTeamAndAgent(_ context.Context, teamID, agentID string) (*domain.TeamMembership, error) {
	for _, m := range f.memberships {
		if m.TeamID == teamID && m.AgentID == agentID && m.ActiveMembership() {
			member := m
			return &member, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeFloatingRepo struct {
	records map[string]*domain.FloatingAvailability // keyed agentID|day
}

func floatingKey(agentID, day string) string { return agentID + "|" + day }

func (f *fakeFloatingRepo) Upsert(_ context.Context, record *domain.FloatingAvailability) error {
	record.ID = "fa-" + strconv.Itoa(len(f.records)+1)
	f.records[floatingKey(record.AgentID, record.Day)] = record
	return nil
}

func (f *fakeFloatingRepo) DeleteForDay(_ context.Context, agentID, day string) error {
	delete(f.records, floatingKey(agentID, day))
	return nil
}

func (f *fakeFloatingRepo) ListForAgentsAndTeam(_ context.Context, agentIDs []string, teamID, fromDay, toDay string) ([]domain.FloatingAvailability, error) {
	var out []domain.FloatingAvailability
	for _, record := range f.records {
		if record.TeamID != teamID || record.Day < fromDay || record.Day > toDay {
			continue
		}
		for _, id := range agentIDs {
			if record.AgentID == id {
				out = append(out, *record)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeFloatingRepo) ListForAgent(_ context.Context, agentID, fromDay, toDay string) ([]domain.FloatingAvailability, error) {
	var out []domain.FloatingAvailability
	for _, record := range f.records {
		if record.AgentID == agentID && record.Day >= fromDay && record.Day <= toDay {
			out = append(out, *record)
		}
	}
	return out, nil
}

// stubEngineData is a minimal scheduling.DataSource for one always-open UTC
// team with a single covering agent.
type stubEngineData struct {
	team         *domain.Team
	agentID      string
	appointments []domain.Appointment
}

func newStubEngineData(teamID, agentID string) *stubEngineData {
	return &stubEngineData{
		team: &domain.Team{
			ID:          teamID,
			Module:      domain.TeamModuleLeasing,
			Timezone:    "UTC",
			OfficeHours: domain.AlwaysOpenOfficeHours(),
		},
		agentID: agentID,
	}
}

func (s *stubEngineData) TeamByID(_ context.Context, _ string) (*domain.Team, error) {
	return s.team, nil
}

func (s *stubEngineData) TeamsByIDs(_ context.Context, _ []string) (map[string]*domain.Team, error) {
	return map[string]*domain.Team{s.team.ID: s.team}, nil
}

func (s *stubEngineData) TeamMemberships(_ context.Context) ([]domain.TeamMembership, error) {
	return []domain.TeamMembership{{
		ID:              "m1",
		TeamID:          s.team.ID,
		AgentID:         s.agentID,
		FunctionalRoles: []string{domain.FunctionalRoleLeasingAgent},
	}}, nil
}

func (s *stubEngineData) TeamEvents(_ context.Context, _ string, _, _ time.Time) ([]domain.CalendarEvent, error) {
	return nil, nil
}

func (s *stubEngineData) AgentEvents(_ context.Context, _ []string, _, _ time.Time) ([]domain.CalendarEvent, error) {
	return nil, nil
}

func (s *stubEngineData) AgentAppointments(_ context.Context, _ []string, _, _ time.Time) ([]domain.Appointment, error) {
	return s.appointments, nil
}

func (s *stubEngineData) FloatingAvailability(_ context.Context, _ []string, _ string, _, _ string) ([]domain.FloatingAvailability, error) {
	return nil, nil
}

type fakeProgramRepo struct {
	programs map[string]*domain.Program // keyed by email identifier
}

func (f *fakeProgramRepo) Create(_ context.Context, program *domain.Program) error {
	program.ID = "program-" + strconv.Itoa(len(f.programs)+1)
	f.programs[program.DirectEmailIdentifier] = program
	return nil
}

func (f *fakeProgramRepo) GetByEmailIdentifier(_ context.Context, email string) (*domain.Program, error) {
	program, ok := f.programs[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return program, nil
}

type fakePropertyRepo struct {
	properties map[string]*domain.Property
}

func (f *fakePropertyRepo) Create(_ context.Context, property *domain.Property) error {
	property.ID = "property-" + strconv.Itoa(len(f.properties)+1)
	f.properties[property.ID] = property
	return nil
}

func (f *fakePropertyRepo) GetByID(_ context.Context, id string) (*domain.Property, error) {
	property, ok := f.properties[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return property, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) error {
	appointment.ID = "appt-" + strconv.Itoa(len(f.appointments)+1)
	f.appointments = append(f.appointments, appointment)
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id string) error {
	for _, ap := range f.appointments {
		if ap.ID == id && !ap.Canceled {
			ap.Canceled = true
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeAppointmentRepo) ListForAgentsInRange(_ context.Context, agentIDs []string, from, to time.Time) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, ap := range f.appointments {
		if ap.Canceled || !ap.StartAt.Before(to) || !from.Before(ap.EndAt) {
			continue
		}
		for _, id := range agentIDs {
			if ap.AgentID == id {
				out = append(out, *ap)
				break
			}
		}
	}
	return out, nil
}
