package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"minesbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectEvents(t *testing.T, bus *Bus, eventType EventType, expected int) (<-chan Event, func() []Event) {
	t.Helper()

	var mu sync.Mutex
	var received []Event
	done := make(chan Event, expected)

	bus.Subscribe(eventType, func(ctx context.Context, event Event) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		done <- event
	})

	return done, func() []Event {
		mu.Lock()
		defer mu.Unlock()
		out := make([]Event, len(received))
		copy(out, received)
		return out
	}
}

func TestBus_EmitDispatchesToSubscribers(t *testing.T) {
	bus := NewBus()
	done, events := collectEvents(t, bus, EventTypeBalanceChange, 1)

	bus.Emit(context.Background(), BalanceChangeEvent{
		UserID:     100,
		OldBalance: 100,
		NewBalance: 80,
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}

	received := events()
	require.Len(t, received, 1)
	change := received[0].(BalanceChangeEvent)
	assert.Equal(t, int64(100), change.UserID)
	assert.Equal(t, int64(80), change.NewBalance)
}

func TestBus_EmitOnlyMatchingType(t *testing.T) {
	bus := NewBus()
	done, _ := collectEvents(t, bus, EventTypeSessionEnded, 1)

	bus.Emit(context.Background(), SessionStartedEvent{UserID: 100, SessionID: "s1"})
	bus.Emit(context.Background(), SessionEndedEvent{UserID: 100, SessionID: "s1", Status: models.SessionStatusLost})

	select {
	case event := <-done:
		assert.Equal(t, EventTypeSessionEnded, event.Type())
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestBus_HandlerPanicIsRecovered(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(EventTypeBroadcast, func(ctx context.Context, event Event) {
		panic("handler blew up")
	})
	done, _ := collectEvents(t, bus, EventTypeBroadcast, 1)

	bus.Emit(context.Background(), BroadcastEvent{Message: "hello"})

	// The panicking handler must not take down the healthy one
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("healthy handler was not invoked")
	}
}

func TestTransactionalBus_FlushAfterCommit(t *testing.T) {
	bus := NewBus()
	done, _ := collectEvents(t, bus, EventTypeBonusClaimed, 1)

	txBus := NewTransactionalBus(bus)
	txBus.Publish(BonusClaimedEvent{UserID: 100, Kind: models.BonusKindDaily, Amount: 50})

	// Nothing reaches the bus until the flush
	select {
	case <-done:
		t.Fatal("event escaped before flush")
	case <-time.After(50 * time.Millisecond):
	}

	txBus.Flush(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not flushed")
	}
}

func TestTransactionalBus_DiscardDropsPending(t *testing.T) {
	bus := NewBus()
	done, _ := collectEvents(t, bus, EventTypeBonusClaimed, 1)

	txBus := NewTransactionalBus(bus)
	txBus.Publish(BonusClaimedEvent{UserID: 100, Kind: models.BonusKindDaily, Amount: 50})
	txBus.Discard()
	txBus.Flush(context.Background())

	select {
	case <-done:
		t.Fatal("discarded event was delivered")
	case <-time.After(50 * time.Millisecond):
	}
}
