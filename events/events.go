package events

import (
	"context"
	"sync"

	"minesbot/models"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange  EventType = "balance_change"
	EventTypeUserCreated    EventType = "user_created"
	EventTypeSessionStarted EventType = "session_started"
	EventTypeSessionEnded   EventType = "session_ended"
	EventTypeBonusClaimed   EventType = "bonus_claimed"
	EventTypeBroadcast      EventType = "broadcast"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	UserID          int64
	OldBalance      int64
	NewBalance      int64
	TransactionType models.TransactionType
	ChangeAmount    int64
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// UserCreatedEvent represents a new user creation
type UserCreatedEvent struct {
	DiscordID      int64
	Username       string
	InitialBalance int64
}

func (e UserCreatedEvent) Type() EventType {
	return EventTypeUserCreated
}

// SessionStartedEvent represents a new game session
type SessionStartedEvent struct {
	UserID    int64
	SessionID string
	Stake     int64
	MineCount int
}

func (e SessionStartedEvent) Type() EventType {
	return EventTypeSessionStarted
}

// SessionEndedEvent represents a session reaching a terminal state
type SessionEndedEvent struct {
	UserID    int64
	SessionID string
	Status    models.SessionStatus
	Stake     int64
	Gems      int
	Reward    int64
}

func (e SessionEndedEvent) Type() EventType {
	return EventTypeSessionEnded
}

// BonusClaimedEvent represents a successful daily or weekly bonus claim
type BonusClaimedEvent struct {
	UserID int64
	Kind   models.BonusKind
	Amount int64
}

func (e BonusClaimedEvent) Type() EventType {
	return EventTypeBonusClaimed
}

// BroadcastEvent carries an admin announcement for the transport layer.
// Delivery is fire-and-forget; failures are logged, never retried against
// game state.
type BroadcastEvent struct {
	Message string
}

func (e BroadcastEvent) Type() EventType {
	return EventTypeBroadcast
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run
// asynchronously so emission never blocks game-state mutation.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}

// Publish emits an event with a background context. It exists so the bus
// satisfies the same publisher interface as the transactional wrapper.
func (b *Bus) Publish(event Event) {
	b.Emit(context.Background(), event)
}

// TransactionalBus stashes events published during a unit of work and flushes
// them to the underlying bus only after the database commit succeeds.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

// NewTransactionalBus creates a transactional wrapper around the given bus
func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

// Publish queues an event until Flush
func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush emits all pending events; called after a successful commit
func (b *TransactionalBus) Flush(ctx context.Context) {
	// Events outlive the transaction context that produced them
	eventCtx := context.Background()
	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
}

// Discard drops all pending events; called after a rollback
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
