package scheduling

import (
	"time"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// DayWindow is the office-hours window for one day, as minute offsets from
// local midnight.
type DayWindow struct {
	StartOffsetMin int
	EndOffsetMin   int
}

// Closed reports whether the office does not open at all that day.
func (w DayWindow) Closed() bool {
	return w.StartOffsetMin == w.EndOffsetMin
}

// OfficeWindow resolves the open/close offsets for the weekday of day, where
// day is a local midnight in the team's timezone.
func OfficeWindow(hours domain.OfficeHours, day time.Time) DayWindow {
	weekday := hours.ForWeekday(day.Weekday())
	return DayWindow{
		StartOffsetMin: weekday.StartTimeOffsetInMin,
		EndOffsetMin:   weekday.EndTimeOffsetInMin,
	}
}

// IsDuringOfficeHours reports whether the instant t falls inside the team's
// office hours. The open offset is inclusive, the close offset exclusive.
func IsDuringOfficeHours(team *domain.Team, t time.Time) (bool, error) {
	loc, err := time.LoadLocation(team.Timezone)
	if err != nil {
		return false, err
	}
	local := t.In(loc)
	window := OfficeWindow(team.OfficeHours, local)
	if window.Closed() {
		return false, nil
	}
	minutes := local.Hour()*60 + local.Minute()
	return minutes >= window.StartOffsetMin && minutes < window.EndOffsetMin, nil
}
