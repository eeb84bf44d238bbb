package domain

import "time"

// EventKind tags a calendar event with a special meaning.
type EventKind string

// EventKindSickLeave marks an agent-scoped event that blocks the agent for
// its stored span. By convention such events are created spanning the full
// calendar day.
const EventKindSickLeave EventKind = "sickLeave"

// CalendarEvent is either team-scoped or agent-scoped; exactly one of TeamID
// and AgentID is set. Start/end instants are stored in UTC. Deletion is soft.
type CalendarEvent struct {
	ID        string
	TeamID    *string
	AgentID   *string
	StartAt   time.Time
	EndAt     time.Time
	Kind      *EventKind
	DeletedAt *time.Time
	CreatedAt time.Time
}

// Deleted reports whether the event has been soft-deleted.
func (e CalendarEvent) Deleted() bool {
	return e.DeletedAt != nil
}

// TeamScoped reports whether the event blocks the whole team.
func (e CalendarEvent) TeamScoped() bool {
	return e.TeamID != nil
}
