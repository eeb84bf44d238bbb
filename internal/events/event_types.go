package events

import (
	"time"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAppointmentBooked   EventType = "appointment_booked"
	EventAvailabilitySet     EventType = "floating_availability_set"
	EventAvailabilityCleared EventType = "floating_availability_cleared"
	EventCalendarEventPosted EventType = "calendar_event_posted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Type    domain.SubjectType `json:"type"`
	AgentID *string            `json:"agent_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AppointmentBookedPayload payload.
type AppointmentBookedPayload struct {
	AgentID  string    `json:"agent_id"`
	TeamID   string    `json:"team_id"`
	PartyRef string    `json:"party_ref"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
}

// AvailabilitySetPayload payload.
type AvailabilitySetPayload struct {
	AgentID string `json:"agent_id"`
	TeamID  string `json:"team_id"`
	Day     string `json:"day"`
}

// AvailabilityClearedPayload payload.
type AvailabilityClearedPayload struct {
	AgentID string `json:"agent_id"`
	Day     string `json:"day"`
}

// CalendarEventPostedPayload payload.
type CalendarEventPostedPayload struct {
	TeamID  *string   `json:"team_id,omitempty"`
	AgentID *string   `json:"agent_id,omitempty"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}
