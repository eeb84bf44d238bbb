package domain

import "time"

// Functional role tags carried on a team membership.
const (
	FunctionalRoleLeasingAgent = "LWA"
	FunctionalRoleDispatcher   = "LD"
)

// TeamMembership relates an agent to a team. An agent may hold memberships in
// several teams at once; removal is soft (inactive flag plus end date).
type TeamMembership struct {
	ID              string
	TeamID          string
	AgentID         string
	FunctionalRoles []string
	Inactive        bool
	EndDate         *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasRole reports whether the membership carries the given functional role.
func (m TeamMembership) HasRole(role string) bool {
	for _, r := range m.FunctionalRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ActiveMembership reports whether the membership still counts: not flagged
// inactive and not end-dated.
func (m TeamMembership) ActiveMembership() bool {
	return !m.Inactive && m.EndDate == nil
}
