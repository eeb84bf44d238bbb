package scheduling

import (
	"time"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// AgentBusyIntervals gathers one agent's private busy intervals for the local
// day [dayStart, dayEnd): non-deleted agent-scoped calendar events (a
// sick-leave event blocks exactly its stored span) and non-cancelled
// appointments, clipped to the day.
func AgentBusyIntervals(
	agentID string,
	dayStart, dayEnd time.Time,
	events []domain.CalendarEvent,
	appointments []domain.Appointment,
) []Interval {
	var busy []Interval
	for _, ev := range events {
		if ev.Deleted() || ev.TeamScoped() || ev.AgentID == nil || *ev.AgentID != agentID {
			continue
		}
		if iv, ok := clipToDay(ev.StartAt, ev.EndAt, dayStart, dayEnd); ok {
			busy = append(busy, iv)
		}
	}
	for _, ap := range appointments {
		if ap.Canceled || ap.AgentID != agentID {
			continue
		}
		if iv, ok := clipToDay(ap.StartAt, ap.EndAt, dayStart, dayEnd); ok {
			busy = append(busy, iv)
		}
	}
	return busy
}

// TeamBusyIntervals gathers the team-wide busy intervals for the local day.
// These apply identically to every agent on the team.
func TeamBusyIntervals(teamID string, dayStart, dayEnd time.Time, events []domain.CalendarEvent) []Interval {
	var busy []Interval
	for _, ev := range events {
		if ev.Deleted() || !ev.TeamScoped() || *ev.TeamID != teamID {
			continue
		}
		if iv, ok := clipToDay(ev.StartAt, ev.EndAt, dayStart, dayEnd); ok {
			busy = append(busy, iv)
		}
	}
	return busy
}

func clipToDay(start, end, dayStart, dayEnd time.Time) (Interval, bool) {
	if !start.Before(dayEnd) || !dayStart.Before(end) {
		return Interval{}, false
	}
	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}
	return Interval{Start: start, End: end}, true
}
