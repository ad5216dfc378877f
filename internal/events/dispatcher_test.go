package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_FansOutToAllSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var first, second int
	dispatcher.Subscribe(EventLeaveRequestCreated, func(context.Context, Event) error {
		first++
		return nil
	})
	dispatcher.Subscribe(EventLeaveRequestCreated, func(context.Context, Event) error {
		second++
		return nil
	})
	dispatcher.Subscribe(EventSwapRequestCreated, func(context.Context, Event) error {
		t.Fatal("handler for a different event type must not fire")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventLeaveRequestCreated})
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestDispatcher_FailingHandlerDoesNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	handlerErr := errors.New("notification down")

	var called bool
	dispatcher.Subscribe(EventSwapRequestDecided, func(context.Context, Event) error {
		return handlerErr
	})
	dispatcher.Subscribe(EventSwapRequestDecided, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventSwapRequestDecided})
	assert.ErrorIs(t, err, handlerErr)
	assert.True(t, called)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	assert.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventAutoApproveChanged}))
}
