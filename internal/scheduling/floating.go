package scheduling

import (
	"sort"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// coverageMembership reports whether a membership can contribute coverage:
// active, tagged with the leasing-agent role, and not a dispatcher.
func coverageMembership(m domain.TeamMembership) bool {
	return m.ActiveMembership() &&
		m.HasRole(domain.FunctionalRoleLeasingAgent) &&
		!m.HasRole(domain.FunctionalRoleDispatcher)
}

// MultiTeamAgents returns the ids of agents holding coverage memberships in
// more than one active, non resident-services team. Membership in a
// resident-services team does not count toward the multiplicity.
func MultiTeamAgents(memberships []domain.TeamMembership, teams map[string]*domain.Team) map[string]struct{} {
	counts := make(map[string]int)
	for _, m := range memberships {
		if !coverageMembership(m) {
			continue
		}
		team := teams[m.TeamID]
		if team == nil || !team.Active() || team.Module == domain.TeamModuleResidentServices {
			continue
		}
		counts[m.AgentID]++
	}

	multi := make(map[string]struct{})
	for agentID, n := range counts {
		if n > 1 {
			multi[agentID] = struct{}{}
		}
	}
	return multi
}

// ActiveAgents resolves the agent ids counting as coverage for team on the
// given local day (YYYY-MM-DD). Multi-team agents need a floating
// availability record assigning them to this team for the day; the gate is
// skipped entirely for resident-services teams. The result is sorted so the
// same inputs always produce the same output.
func ActiveAgents(
	team *domain.Team,
	day string,
	memberships []domain.TeamMembership,
	teams map[string]*domain.Team,
	floating []domain.FloatingAvailability,
) []string {
	if !team.Active() {
		return nil
	}

	multi := MultiTeamAgents(memberships, teams)

	seen := make(map[string]struct{})
	active := make([]string, 0)
	for _, m := range memberships {
		if m.TeamID != team.ID || !coverageMembership(m) {
			continue
		}
		if _, dup := seen[m.AgentID]; dup {
			continue
		}
		if team.Module != domain.TeamModuleResidentServices {
			if _, isMulti := multi[m.AgentID]; isMulti && !hasFloatingRecord(floating, m.AgentID, team.ID, day) {
				continue
			}
		}
		seen[m.AgentID] = struct{}{}
		active = append(active, m.AgentID)
	}

	sort.Strings(active)
	return active
}

func hasFloatingRecord(records []domain.FloatingAvailability, agentID, teamID, day string) bool {
	for _, r := range records {
		if r.AgentID == agentID && r.TeamID == teamID && r.Day == day {
			return true
		}
	}
	return false
}
