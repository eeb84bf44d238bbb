package domain

import "time"

// Program ties an inbound marketing identity (a program email) to the team
// and property that serve it. Available-slot requests resolve their team and
// timezone through the program.
type Program struct {
	ID                    string
	TeamID                string
	PropertyID            string
	DirectEmailIdentifier string
	CreatedAt             time.Time
}

// Property holds the bits of a property the engine cares about.
type Property struct {
	ID        string
	Name      string
	Timezone  string
	CreatedAt time.Time
}
