package domain

import "time"

// DateISOFormat is the wire and storage format for calendar days.
const DateISOFormat = "2006-01-02"

// FloatingAvailability records that an agent opted in to cover a specific
// team on a specific local calendar day. An agent has at most one record per
// day across all teams; assigning a different team for the same day replaces
// the prior record.
type FloatingAvailability struct {
	ID           string
	TeamMemberID string
	AgentID      string
	TeamID       string
	Day          string // DateISOFormat
	CreatedAt    time.Time
}
