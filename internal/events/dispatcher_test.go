package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversToAllSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var calls []string
	dispatcher.Subscribe(EventAvailabilitySet, func(_ context.Context, _ Event) error {
		calls = append(calls, "first")
		return errors.New("handler failed")
	})
	dispatcher.Subscribe(EventAvailabilitySet, func(_ context.Context, _ Event) error {
		calls = append(calls, "second")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventAvailabilitySet})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls, "a failing handler must not block the rest")
}

func TestDispatcher_IgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventAppointmentBooked, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventAvailabilityCleared})
	require.NoError(t, err)
	assert.False(t, called)
}
