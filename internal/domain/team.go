package domain

import "time"

// TeamModule classifies what a team does. Floating-agent gating only applies
// to non resident-services teams.
type TeamModule string

const (
	TeamModuleLeasing          TeamModule = "leasing"
	TeamModuleResidentServices TeamModule = "residentServices"
)

// WeekdayOfficeHours is the open/close window for a single weekday, expressed
// as minute offsets from local midnight in the team's timezone. Start == End
// means closed all day; 0..1440 means always open.
type WeekdayOfficeHours struct {
	StartTimeOffsetInMin int `json:"startTimeOffsetInMin"`
	EndTimeOffsetInMin   int `json:"endTimeOffsetInMin"`
}

// OfficeHours holds one window per weekday, keyed by the English weekday name.
type OfficeHours map[string]WeekdayOfficeHours

// ForWeekday resolves the window for a weekday. A missing entry reads as
// closed all day.
func (h OfficeHours) ForWeekday(day time.Weekday) WeekdayOfficeHours {
	if h == nil {
		return WeekdayOfficeHours{}
	}
	return h[day.String()]
}

// AlwaysOpenOfficeHours returns a schedule open 24h every day.
func AlwaysOpenOfficeHours() OfficeHours {
	hours := make(OfficeHours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		hours[d.String()] = WeekdayOfficeHours{StartTimeOffsetInMin: 0, EndTimeOffsetInMin: 1440}
	}
	return hours
}

// AlwaysClosedOfficeHours returns a schedule closed every day.
func AlwaysClosedOfficeHours() OfficeHours {
	hours := make(OfficeHours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		hours[d.String()] = WeekdayOfficeHours{}
	}
	return hours
}

// ExternalCalendarLink holds the optional third-party calendar linkage for a
// team or agent.
type ExternalCalendarLink struct {
	CalendarAccount string `json:"calendarAccount,omitempty"`
	CalendarID      string `json:"calendarId,omitempty"`
}

// Team represents a leasing office team operating on a property.
type Team struct {
	ID                string
	Name              string
	Module            TeamModule
	Timezone          string
	OfficeHours       OfficeHours
	ExternalCalendars *ExternalCalendarLink
	Inactive          bool
	EndDate           *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Active reports whether the team still provides coverage.
func (t *Team) Active() bool {
	return t != nil && !t.Inactive && t.EndDate == nil
}
