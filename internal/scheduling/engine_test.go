package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

type fakeData struct {
	teams        map[string]*domain.Team
	memberships  []domain.TeamMembership
	teamEvents   []domain.CalendarEvent
	agentEvents  []domain.CalendarEvent
	appointments []domain.Appointment
	floating     []domain.FloatingAvailability
}

func (f *fakeData) TeamByID(_ context.Context, teamID string) (*domain.Team, error) {
	return f.teams[teamID], nil
}

func (f *fakeData) TeamsByIDs(_ context.Context, teamIDs []string) (map[string]*domain.Team, error) {
	out := make(map[string]*domain.Team, len(teamIDs))
	for _, id := range teamIDs {
		if team, ok := f.teams[id]; ok {
			out[id] = team
		}
	}
	return out, nil
}

func (f *fakeData) TeamMemberships(_ context.Context) ([]domain.TeamMembership, error) {
	return f.memberships, nil
}

func (f *fakeData) TeamEvents(_ context.Context, _ string, _, _ time.Time) ([]domain.CalendarEvent, error) {
	return f.teamEvents, nil
}

func (f *fakeData) AgentEvents(_ context.Context, _ []string, _, _ time.Time) ([]domain.CalendarEvent, error) {
	return f.agentEvents, nil
}

func (f *fakeData) AgentAppointments(_ context.Context, _ []string, _, _ time.Time) ([]domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeData) FloatingAvailability(_ context.Context, _ []string, _ string, _, _ string) ([]domain.FloatingAvailability, error) {
	return f.floating, nil
}

func strPtr(s string) *string { return &s }

// twoTeamFixture builds team "a" with a dedicated agent and a multi-team
// agent shared with team "b", plus a lunch closure and a personal conflict on
// the first day.
func twoTeamFixture(day0 time.Time) *fakeData {
	teamA := &domain.Team{ID: "a", Module: domain.TeamModuleLeasing, Timezone: "UTC", OfficeHours: domain.AlwaysOpenOfficeHours()}
	teamB := &domain.Team{ID: "b", Module: domain.TeamModuleLeasing, Timezone: "UTC", OfficeHours: domain.AlwaysOpenOfficeHours()}

	return &fakeData{
		teams: map[string]*domain.Team{"a": teamA, "b": teamB},
		memberships: []domain.TeamMembership{
			{ID: "m1", TeamID: "a", AgentID: "solo", FunctionalRoles: []string{domain.FunctionalRoleLeasingAgent}},
			{ID: "m2", TeamID: "a", AgentID: "multi", FunctionalRoles: []string{domain.FunctionalRoleLeasingAgent}},
			{ID: "m3", TeamID: "b", AgentID: "multi", FunctionalRoles: []string{domain.FunctionalRoleLeasingAgent}},
		},
		teamEvents: []domain.CalendarEvent{
			{ID: "lunch", TeamID: strPtr("a"), StartAt: day0.Add(12 * time.Hour), EndAt: day0.Add(13 * time.Hour)},
		},
		appointments: []domain.Appointment{
			{ID: "tour", AgentID: "solo", StartAt: day0.Add(9 * time.Hour), EndAt: day0.Add(10 * time.Hour)},
		},
	}
}

func TestTeamCalendar_MultiTeamAgentGatedWithoutFloatingRecord(t *testing.T) {
	day0 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	data := twoTeamFixture(day0)
	engine := NewEngine(data, time.Hour)

	now := day0.Add(-12 * time.Hour)
	calendar, err := engine.TeamCalendar(context.Background(), "a", day0, 2, time.UTC, now)
	require.NoError(t, err)
	require.Len(t, calendar, 2)

	// only "solo" covers: lunch removes one slot, the tour removes another
	assert.Equal(t, "2026-03-02", calendar[0].Day)
	assert.False(t, calendar[0].OfficeClosed)
	assert.Len(t, calendar[0].Slots, 22)
	assert.NotContains(t, calendar[0].Slots, day0.Add(9*time.Hour))
	assert.NotContains(t, calendar[0].Slots, day0.Add(12*time.Hour))

	assert.Equal(t, "2026-03-03", calendar[1].Day)
	assert.Len(t, calendar[1].Slots, 24)
}

func TestTeamCalendar_FloatingRecordRestoresCoverage(t *testing.T) {
	day0 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	data := twoTeamFixture(day0)
	data.floating = []domain.FloatingAvailability{
		{AgentID: "multi", TeamID: "a", Day: "2026-03-02"},
	}
	engine := NewEngine(data, time.Hour)

	now := day0.Add(-12 * time.Hour)
	calendar, err := engine.TeamCalendar(context.Background(), "a", day0, 1, time.UTC, now)
	require.NoError(t, err)
	require.Len(t, calendar, 1)

	// "multi" now covers the 09:00 tour; only the team lunch is gone
	assert.Len(t, calendar[0].Slots, 23)
	assert.Contains(t, calendar[0].Slots, day0.Add(9*time.Hour))
	assert.NotContains(t, calendar[0].Slots, day0.Add(12*time.Hour))
}

func TestTeamCalendar_AllDayTeamEventClosesOffice(t *testing.T) {
	day0 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	data := twoTeamFixture(day0)
	data.teamEvents = []domain.CalendarEvent{
		{ID: "offsite", TeamID: strPtr("a"), StartAt: day0, EndAt: day0.AddDate(0, 0, 1)},
	}
	engine := NewEngine(data, time.Hour)

	calendar, err := engine.TeamCalendar(context.Background(), "a", day0, 1, time.UTC, day0.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, calendar, 1)
	assert.True(t, calendar[0].OfficeClosed)
	assert.Empty(t, calendar[0].Slots)
}

func TestTeamCalendar_SickLeaveBlocksStoredSpan(t *testing.T) {
	day0 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	data := twoTeamFixture(day0)
	data.teamEvents = nil
	data.appointments = nil
	sick := domain.EventKindSickLeave
	data.agentEvents = []domain.CalendarEvent{
		{ID: "sick", AgentID: strPtr("solo"), StartAt: day0, EndAt: day0.AddDate(0, 0, 1), Kind: &sick},
	}
	engine := NewEngine(data, time.Hour)

	calendar, err := engine.TeamCalendar(context.Background(), "a", day0, 1, time.UTC, day0.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, calendar, 1)
	assert.False(t, calendar[0].OfficeClosed)
	assert.Empty(t, calendar[0].Slots)
}

func TestTeamCalendar_DeletedEventsIgnored(t *testing.T) {
	day0 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	data := twoTeamFixture(day0)
	deletedAt := day0.Add(-time.Hour)
	data.teamEvents[0].DeletedAt = &deletedAt
	data.appointments = nil
	engine := NewEngine(data, time.Hour)

	calendar, err := engine.TeamCalendar(context.Background(), "a", day0, 1, time.UTC, day0.Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, calendar[0].Slots, 24)
}

func TestAgentForSlot(t *testing.T) {
	day0 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	data := twoTeamFixture(day0)
	engine := NewEngine(data, time.Hour)
	now := day0.Add(-12 * time.Hour)

	agentID, err := engine.AgentForSlot(context.Background(), "a", day0.Add(10*time.Hour), time.UTC, now)
	require.NoError(t, err)
	assert.Equal(t, "solo", agentID)

	// lunch closure
	_, err = engine.AgentForSlot(context.Background(), "a", day0.Add(12*time.Hour), time.UTC, now)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// the only covering agent has a tour at 09:00
	_, err = engine.AgentForSlot(context.Background(), "a", day0.Add(9*time.Hour), time.UTC, now)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// misaligned start
	_, err = engine.AgentForSlot(context.Background(), "a", day0.Add(10*time.Hour+30*time.Minute), time.UTC, now)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// past slots cannot be booked
	_, err = engine.AgentForSlot(context.Background(), "a", day0.Add(10*time.Hour), time.UTC, day0.AddDate(0, 0, 2))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}
