package scheduling

import (
	"time"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// DayCalendar is the availability output for one local calendar day. Slots
// are absolute UTC instants so the property timezone and the calendar-day
// boundary stay unambiguous.
type DayCalendar struct {
	Day          string      `json:"day"`
	OfficeClosed bool        `json:"officeClosed"`
	Slots        []time.Time `json:"slots"`
}

// DayInput bundles everything the synthesizer needs for one local day.
type DayInput struct {
	Day          time.Time // local midnight in the team timezone
	Window       DayWindow
	SlotDuration time.Duration
	TeamBusy     []Interval
	ActiveAgents []string
	AgentBusy    map[string][]Interval
}

// SynthesizeDay merges office hours, team-wide closures and per-agent busy
// intervals into the calendar for one day. Team-wide intervals remove a slot
// for everyone; after that a slot survives when at least one active agent is
// free for its whole span.
func SynthesizeDay(in DayInput) DayCalendar {
	out := DayCalendar{
		Day:   in.Day.Format(domain.DateISOFormat),
		Slots: make([]time.Time, 0),
	}
	if in.Window.Closed() {
		out.OfficeClosed = true
		return out
	}

	slotDur := in.SlotDuration
	if slotDur <= 0 {
		slotDur = time.Hour
	}

	openAt := in.Day.Add(time.Duration(in.Window.StartOffsetMin) * time.Minute)
	closeAt := in.Day.Add(time.Duration(in.Window.EndOffsetMin) * time.Minute)

	candidates := make([]time.Time, 0)
	for t := alignToGrid(openAt, in.Day, slotDur); !t.Add(slotDur).After(closeAt); t = t.Add(slotDur) {
		candidates = append(candidates, t)
	}

	grid := make([]time.Time, 0, len(candidates))
	for _, slot := range candidates {
		if !overlapsAny(slot, slot.Add(slotDur), in.TeamBusy) {
			grid = append(grid, slot)
		}
	}

	// Office-closed is a team-wide determination: the team events wiped the
	// whole grid and they span the entire office-hours window.
	if len(grid) == 0 && len(candidates) > 0 && covers(in.TeamBusy, openAt, closeAt) {
		out.OfficeClosed = true
		return out
	}

	for _, slot := range grid {
		for _, agentID := range in.ActiveAgents {
			if !overlapsAny(slot, slot.Add(slotDur), in.AgentBusy[agentID]) {
				out.Slots = append(out.Slots, slot.UTC())
				break
			}
		}
	}
	return out
}

// alignToGrid rounds openAt up to the next slot boundary, where boundaries
// are slotDur multiples from local midnight.
func alignToGrid(openAt, midnight time.Time, slotDur time.Duration) time.Time {
	offset := openAt.Sub(midnight)
	if rem := offset % slotDur; rem != 0 {
		offset += slotDur - rem
	}
	return midnight.Add(offset)
}
