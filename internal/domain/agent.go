package domain

import "time"

// Agent is a leasing agent (a user from the engine's point of view).
type Agent struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
