package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

func laTeam(t *testing.T, hours domain.OfficeHours) *domain.Team {
	t.Helper()
	return &domain.Team{
		ID:          "team-1",
		Name:        "Downtown Leasing",
		Module:      domain.TeamModuleLeasing,
		Timezone:    "America/Los_Angeles",
		OfficeHours: hours,
	}
}

func TestOfficeWindow_MissingWeekdayReadsClosed(t *testing.T) {
	hours := domain.OfficeHours{
		"Monday": {StartTimeOffsetInMin: 540, EndTimeOffsetInMin: 1080},
	}

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	window := OfficeWindow(hours, monday)
	assert.False(t, window.Closed())
	assert.Equal(t, 540, window.StartOffsetMin)
	assert.Equal(t, 1080, window.EndOffsetMin)

	tuesday := monday.AddDate(0, 0, 1)
	assert.True(t, OfficeWindow(hours, tuesday).Closed())
}

func TestIsDuringOfficeHours_BoundaryBehavior(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// Friday window 07:00-16:00 local
	team := laTeam(t, domain.OfficeHours{
		"Friday": {StartTimeOffsetInMin: 420, EndTimeOffsetInMin: 960},
	})

	during, err := IsDuringOfficeHours(team, time.Date(2026, 3, 6, 7, 0, 0, 0, la))
	require.NoError(t, err)
	assert.True(t, during, "opening minute is inclusive")

	during, err = IsDuringOfficeHours(team, time.Date(2026, 3, 6, 15, 59, 0, 0, la))
	require.NoError(t, err)
	assert.True(t, during)

	during, err = IsDuringOfficeHours(team, time.Date(2026, 3, 6, 16, 0, 0, 0, la))
	require.NoError(t, err)
	assert.False(t, during, "closing minute is exclusive")

	during, err = IsDuringOfficeHours(team, time.Date(2026, 3, 6, 16, 10, 0, 0, la))
	require.NoError(t, err)
	assert.False(t, during)

	// Saturday has no entry, reads closed
	during, err = IsDuringOfficeHours(team, time.Date(2026, 3, 7, 10, 0, 0, 0, la))
	require.NoError(t, err)
	assert.False(t, during)
}

func TestIsDuringOfficeHours_AlwaysOpen(t *testing.T) {
	team := laTeam(t, domain.AlwaysOpenOfficeHours())

	during, err := IsDuringOfficeHours(team, time.Date(2026, 3, 6, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, during)
}

func TestIsDuringOfficeHours_BadTimezone(t *testing.T) {
	team := laTeam(t, domain.AlwaysOpenOfficeHours())
	team.Timezone = "Not/AZone"

	_, err := IsDuringOfficeHours(team, time.Now())
	assert.Error(t, err)
}
