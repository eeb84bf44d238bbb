package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// ErrSlotUnavailable signals that a requested slot cannot be booked.
var ErrSlotUnavailable = errors.New("slot not available")

// DataSource provides the read snapshot the engine computes over. All
// collaborators are injected; the engine keeps no state between invocations
// and performs no writes.
type DataSource interface {
	TeamByID(ctx context.Context, teamID string) (*domain.Team, error)
	TeamsByIDs(ctx context.Context, teamIDs []string) (map[string]*domain.Team, error)
	TeamMemberships(ctx context.Context) ([]domain.TeamMembership, error)
	TeamEvents(ctx context.Context, teamID string, from, to time.Time) ([]domain.CalendarEvent, error)
	AgentEvents(ctx context.Context, agentIDs []string, from, to time.Time) ([]domain.CalendarEvent, error)
	AgentAppointments(ctx context.Context, agentIDs []string, from, to time.Time) ([]domain.Appointment, error)
	FloatingAvailability(ctx context.Context, agentIDs []string, teamID string, fromDay, toDay string) ([]domain.FloatingAvailability, error)
}

// Engine computes bookable slots for a team over a range of days.
type Engine struct {
	data         DataSource
	slotDuration time.Duration
}

// NewEngine constructs the engine.
func NewEngine(data DataSource, slotDuration time.Duration) *Engine {
	if slotDuration <= 0 {
		slotDuration = time.Hour
	}
	return &Engine{data: data, slotDuration: slotDuration}
}

// SlotDuration returns the configured slot length.
func (e *Engine) SlotDuration() time.Duration {
	return e.slotDuration
}

// teamSnapshot is one consistent read of everything a range computation
// needs.
type teamSnapshot struct {
	team         *domain.Team
	memberships  []domain.TeamMembership
	teams        map[string]*domain.Team
	teamEvents   []domain.CalendarEvent
	agentEvents  []domain.CalendarEvent
	appointments []domain.Appointment
	floating     []domain.FloatingAvailability
}

func (e *Engine) loadSnapshot(ctx context.Context, teamID string, days []time.Time) (*teamSnapshot, error) {
	team, err := e.data.TeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	memberships, err := e.data.TeamMemberships(ctx)
	if err != nil {
		return nil, err
	}

	agentIDs, relatedTeamIDs := coverageScope(teamID, memberships)

	teams, err := e.data.TeamsByIDs(ctx, relatedTeamIDs)
	if err != nil {
		return nil, err
	}

	rangeStart := days[0]
	rangeEnd := days[len(days)-1].AddDate(0, 0, 1)
	fromDay := days[0].Format(domain.DateISOFormat)
	toDay := days[len(days)-1].Format(domain.DateISOFormat)

	teamEvents, err := e.data.TeamEvents(ctx, teamID, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	agentEvents, err := e.data.AgentEvents(ctx, agentIDs, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	appointments, err := e.data.AgentAppointments(ctx, agentIDs, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	floating, err := e.data.FloatingAvailability(ctx, agentIDs, teamID, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	return &teamSnapshot{
		team:         team,
		memberships:  memberships,
		teams:        teams,
		teamEvents:   teamEvents,
		agentEvents:  agentEvents,
		appointments: appointments,
		floating:     floating,
	}, nil
}

func (e *Engine) dayInput(snap *teamSnapshot, day time.Time) DayInput {
	dayEnd := day.AddDate(0, 0, 1)
	active := ActiveAgents(snap.team, day.Format(domain.DateISOFormat), snap.memberships, snap.teams, snap.floating)

	agentBusy := make(map[string][]Interval, len(active))
	for _, agentID := range active {
		agentBusy[agentID] = AgentBusyIntervals(agentID, day, dayEnd, snap.agentEvents, snap.appointments)
	}

	return DayInput{
		Day:          day,
		Window:       OfficeWindow(snap.team.OfficeHours, day),
		SlotDuration: e.slotDuration,
		TeamBusy:     TeamBusyIntervals(snap.team.ID, day, dayEnd, snap.teamEvents),
		ActiveAgents: active,
		AgentBusy:    agentBusy,
	}
}

// TeamCalendar computes the per-day availability for a team, starting at from
// (clamped to now when in the past), for numberOfDays local days in loc. Any
// resolution failure aborts the whole computation; partial results are never
// returned.
func (e *Engine) TeamCalendar(
	ctx context.Context,
	teamID string,
	from time.Time,
	numberOfDays int,
	loc *time.Location,
	now time.Time,
) ([]DayCalendar, error) {
	days, err := Window(from, numberOfDays, loc, now)
	if err != nil {
		return nil, err
	}

	snap, err := e.loadSnapshot(ctx, teamID, days)
	if err != nil {
		return nil, err
	}

	calendar := make([]DayCalendar, 0, len(days))
	for _, day := range days {
		calendar = append(calendar, SynthesizeDay(e.dayInput(snap, day)))
	}
	return calendar, nil
}

// AgentForSlot verifies that the slot starting at slotStart is bookable for
// the team and returns the first free active agent, in sorted order. Returns
// ErrSlotUnavailable when the slot is misaligned, outside office hours,
// blocked by a team event or no agent is free.
func (e *Engine) AgentForSlot(
	ctx context.Context,
	teamID string,
	slotStart time.Time,
	loc *time.Location,
	now time.Time,
) (string, error) {
	if slotStart.Before(now) {
		return "", ErrSlotUnavailable
	}

	local := slotStart.In(loc)
	day := startOfDay(local)
	if local.Sub(day)%e.slotDuration != 0 {
		return "", ErrSlotUnavailable
	}

	snap, err := e.loadSnapshot(ctx, teamID, []time.Time{day})
	if err != nil {
		return "", err
	}

	in := e.dayInput(snap, day)
	slotEnd := local.Add(e.slotDuration)

	if in.Window.Closed() {
		return "", ErrSlotUnavailable
	}
	openAt := day.Add(time.Duration(in.Window.StartOffsetMin) * time.Minute)
	closeAt := day.Add(time.Duration(in.Window.EndOffsetMin) * time.Minute)
	if local.Before(openAt) || slotEnd.After(closeAt) {
		return "", ErrSlotUnavailable
	}
	if overlapsAny(local, slotEnd, in.TeamBusy) {
		return "", ErrSlotUnavailable
	}

	for _, agentID := range in.ActiveAgents {
		if !overlapsAny(local, slotEnd, in.AgentBusy[agentID]) {
			return agentID, nil
		}
	}
	return "", ErrSlotUnavailable
}

// coverageScope returns the agent ids holding a coverage membership in the
// team, together with every team id those agents belong to (needed for the
// multi-team module check).
func coverageScope(teamID string, memberships []domain.TeamMembership) ([]string, []string) {
	agentSet := make(map[string]struct{})
	for _, m := range memberships {
		if m.TeamID == teamID && coverageMembership(m) {
			agentSet[m.AgentID] = struct{}{}
		}
	}

	teamSet := make(map[string]struct{})
	teamSet[teamID] = struct{}{}
	for _, m := range memberships {
		if _, ok := agentSet[m.AgentID]; ok {
			teamSet[m.TeamID] = struct{}{}
		}
	}

	agentIDs := make([]string, 0, len(agentSet))
	for id := range agentSet {
		agentIDs = append(agentIDs, id)
	}
	teamIDs := make([]string, 0, len(teamSet))
	for id := range teamSet {
		teamIDs = append(teamIDs, id)
	}
	return agentIDs, teamIDs
}
