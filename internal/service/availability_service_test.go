package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/leasing-crm/internal/domain"
	"github.com/spec-kit/leasing-crm/internal/scheduling"
	apperrors "github.com/spec-kit/leasing-crm/pkg/util"
)

func newAvailabilityFixture() (*AvailabilityService, *fakeProgramRepo, *fakePropertyRepo) {
	programs := &fakeProgramRepo{programs: map[string]*domain.Program{}}
	properties := &fakePropertyRepo{properties: map[string]*domain.Property{}}

	engine := scheduling.NewEngine(newStubEngineData("team-1", "agent-1"), time.Hour)
	svc := NewAvailabilityService(AvailabilityDependencies{
		ProgramRepo:  programs,
		PropertyRepo: properties,
		Engine:       engine,
		Logger:       zap.NewNop(),
	})
	return svc, programs, properties
}

func errToken(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToServiceError(err).Token
}

func TestAvailableSlots_MissingProgramEmail(t *testing.T) {
	svc, _, _ := newAvailabilityFixture()

	_, err := svc.AvailableSlots(context.Background(), "", "2026-03-02", 1)
	assert.Equal(t, "MISSING_PROGRAM_EMAIL_OR_SESSION_ID", errToken(t, err))
}

func TestAvailableSlots_InvalidNumberOfDays(t *testing.T) {
	svc, _, _ := newAvailabilityFixture()

	_, err := svc.AvailableSlots(context.Background(), "leasing@example.com", "2026-03-02", 0)
	assert.Equal(t, "INVALID_NUMBER_OF_DAYS", errToken(t, err))
}

func TestAvailableSlots_ProgramNotFound(t *testing.T) {
	svc, _, _ := newAvailabilityFixture()

	_, err := svc.AvailableSlots(context.Background(), "nobody@example.com", "2026-03-02", 1)
	assert.Equal(t, "PROGRAM_NOT_FOUND", errToken(t, err))
}

func TestAvailableSlots_IncorrectFromDate(t *testing.T) {
	svc, programs, properties := newAvailabilityFixture()

	property := &domain.Property{Name: "Parkmerced", Timezone: "America/Los_Angeles"}
	require.NoError(t, properties.Create(context.Background(), property))
	require.NoError(t, programs.Create(context.Background(), &domain.Program{
		TeamID:                "team-1",
		PropertyID:            property.ID,
		DirectEmailIdentifier: "leasing@example.com",
	}))

	_, err := svc.AvailableSlots(context.Background(), "leasing@example.com", "03-02-2026", 1)
	assert.Equal(t, "INCORRECT_FROM_DATE", errToken(t, err))
}

func TestAvailableSlots_IncorrectFromDateWithoutProgram(t *testing.T) {
	svc, _, _ := newAvailabilityFixture()

	// the from format is rejected before the program email resolves
	_, err := svc.AvailableSlots(context.Background(), "nobody@example.com", "2018_1_12", 1)
	assert.Equal(t, "INCORRECT_FROM_DATE", errToken(t, err))
}

func TestAvailableSlots_ReturnsCalendar(t *testing.T) {
	svc, programs, properties := newAvailabilityFixture()
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	property := &domain.Property{Name: "Parkmerced", Timezone: "UTC"}
	require.NoError(t, properties.Create(context.Background(), property))
	require.NoError(t, programs.Create(context.Background(), &domain.Program{
		TeamID:                "team-1",
		PropertyID:            property.ID,
		DirectEmailIdentifier: "leasing@example.com",
	}))

	result, err := svc.AvailableSlots(context.Background(), "leasing@example.com", "2026-03-02", 2)
	require.NoError(t, err)
	assert.Equal(t, "UTC", result.PropertyTimezone)
	require.Len(t, result.Calendar, 2)
	assert.Equal(t, "2026-03-02", result.Calendar[0].Day)
	assert.Len(t, result.Calendar[0].Slots, 24)
}
