package domain

import "time"

// Appointment is a booked tour slot. Cancelled appointments do not block
// availability.
type Appointment struct {
	ID        string
	AgentID   string
	PartyRef  string
	StartAt   time.Time
	EndAt     time.Time
	Canceled  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
