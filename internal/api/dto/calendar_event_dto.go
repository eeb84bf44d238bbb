package dto

import "time"

// CreateCalendarEventRequest payload for new calendar blocks.
type CreateCalendarEventRequest struct {
	TeamID  *string `json:"teamId"`
	AgentID *string `json:"agentId"`
	StartAt string  `json:"startAt"`
	EndAt   string  `json:"endAt"`
	Kind    *string `json:"kind"`
}

// CalendarEventResponse describes a stored calendar block.
type CalendarEventResponse struct {
	ID      string    `json:"id"`
	TeamID  *string   `json:"teamId,omitempty"`
	AgentID *string   `json:"agentId,omitempty"`
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
	Kind    *string   `json:"kind,omitempty"`
}
