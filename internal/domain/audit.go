package domain

import "time"

// AuditEntry is a persisted trace of a domain event (appointment booked,
// floating availability changed).
type AuditEntry struct {
	ID        string
	EventType string
	SubjectID string
	Payload   map[string]any
	CreatedAt time.Time
}
