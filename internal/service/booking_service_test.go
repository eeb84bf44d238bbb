package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/leasing-crm/internal/domain"
	"github.com/spec-kit/leasing-crm/internal/events"
	"github.com/spec-kit/leasing-crm/internal/scheduling"
)

type bookingFixture struct {
	svc          *BookingService
	data         *stubEngineData
	appointments *fakeAppointmentRepo
	dispatcher   events.Dispatcher
	published    *[]events.Event
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	programs := &fakeProgramRepo{programs: map[string]*domain.Program{}}
	properties := &fakePropertyRepo{properties: map[string]*domain.Property{}}
	appointments := &fakeAppointmentRepo{}

	property := &domain.Property{Name: "Parkmerced", Timezone: "UTC"}
	require.NoError(t, properties.Create(context.Background(), property))
	require.NoError(t, programs.Create(context.Background(), &domain.Program{
		TeamID:                "team-1",
		PropertyID:            property.ID,
		DirectEmailIdentifier: "leasing@example.com",
	}))

	data := newStubEngineData("team-1", "agent-1")
	dispatcher := events.NewInMemoryDispatcher()
	published := &[]events.Event{}
	dispatcher.Subscribe(events.EventAppointmentBooked, func(_ context.Context, event events.Event) error {
		*published = append(*published, event)
		return nil
	})

	svc := NewBookingService(BookingDependencies{
		ProgramRepo:     programs,
		PropertyRepo:    properties,
		AppointmentRepo: appointments,
		Engine:          scheduling.NewEngine(data, time.Hour),
		Dispatcher:      dispatcher,
	})
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return &bookingFixture{svc: svc, data: data, appointments: appointments, dispatcher: dispatcher, published: published}
}

func TestBook_MissingProgramEmail(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Book(context.Background(), BookInput{StartAt: "2026-03-02T10:00:00Z", PartyRef: "party-1"})
	assert.Equal(t, "MISSING_PROGRAM_EMAIL_OR_SESSION_ID", errToken(t, err))
}

func TestBook_IncorrectStartAt(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Book(context.Background(), BookInput{ProgramEmail: "leasing@example.com", StartAt: "2026-03-02", PartyRef: "party-1"})
	assert.Equal(t, "INCORRECT_DATE", errToken(t, err))
}

func TestBook_ProgramNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Book(context.Background(), BookInput{ProgramEmail: "other@example.com", StartAt: "2026-03-02T10:00:00Z", PartyRef: "party-1"})
	assert.Equal(t, "PROGRAM_NOT_FOUND", errToken(t, err))
}

func TestBook_SlotTaken(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	f.data.appointments = []domain.Appointment{
		{ID: "existing", AgentID: "agent-1", StartAt: start, EndAt: start.Add(time.Hour)},
	}

	_, err := f.svc.Book(context.Background(), BookInput{ProgramEmail: "leasing@example.com", StartAt: "2026-03-02T10:00:00Z", PartyRef: "party-1"})
	assert.Equal(t, "SLOT_NOT_AVAILABLE", errToken(t, err))
}

func TestBook_MisalignedSlot(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Book(context.Background(), BookInput{ProgramEmail: "leasing@example.com", StartAt: "2026-03-02T10:30:00Z", PartyRef: "party-1"})
	assert.Equal(t, "INCORRECT_DATE", errToken(t, err))
}

func TestBook_AssignsAgentAndPublishes(t *testing.T) {
	f := newBookingFixture(t)

	appointment, err := f.svc.Book(context.Background(), BookInput{ProgramEmail: "leasing@example.com", StartAt: "2026-03-02T10:00:00Z", PartyRef: "party-1"})
	require.NoError(t, err)

	assert.Equal(t, "agent-1", appointment.AgentID)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), appointment.StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC), appointment.EndAt)
	require.Len(t, f.appointments.appointments, 1)

	require.Len(t, *f.published, 1)
	payload, ok := (*f.published)[0].Payload.(events.AppointmentBookedPayload)
	require.True(t, ok)
	assert.Equal(t, "team-1", payload.TeamID)
	assert.Equal(t, "party-1", payload.PartyRef)
}

func TestBook_FailingSubscriberDoesNotFailBooking(t *testing.T) {
	f := newBookingFixture(t)
	f.dispatcher.Subscribe(events.EventAppointmentBooked, func(_ context.Context, _ events.Event) error {
		return errors.New("audit sink down")
	})

	appointment, err := f.svc.Book(context.Background(), BookInput{ProgramEmail: "leasing@example.com", StartAt: "2026-03-02T10:00:00Z", PartyRef: "party-1"})
	require.NoError(t, err)
	assert.Equal(t, "agent-1", appointment.AgentID)
	require.Len(t, f.appointments.appointments, 1)
}
