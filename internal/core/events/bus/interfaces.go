package bus

import "time"

// EventBus defines the in-process mode bus.
//
// Key characteristics:
// - Type-based fan-out: handlers subscribe by Event.Type() string.
// - Synchronous delivery: Publish calls handler callbacks in the caller
//   goroutine and returns only after every handler ran.
// - At-most-once: an event is delivered once per active subscription, never
//   queued or replayed for late subscribers.
// - Registration order: subscribers of one event type are invoked in the
//   order they subscribed.
// - Error aggregation: multiple handler errors are joined and returned.
// - Optional observability: metrics are produced only while observers are
//   registered.
//
// All methods must be safe for concurrent use.
type EventBus interface {
	// Publish delivers the event synchronously to all active subscribers of
	// event.Type(). If one or more handlers return an error, a joined error
	// is returned.
	Publish(event Event) error
	// PublishBatch publishes events sequentially and aggregates errors.
	PublishBatch(events ...Event) error

	// Subscribe registers a handler for an event type and returns a
	// Subscription handle used to cancel later.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. Safe to call with nil.
	Unsubscribe(Subscription) error

	// AddObserver registers an observer to receive delivery callbacks.
	AddObserver(obs EventBusObserver)
	// RemoveObserver unregisters a previously added observer.
	RemoveObserver(obs EventBusObserver)
	// GetMetrics returns a snapshot of accumulated metrics. Metrics are only
	// collected while at least one observer is registered.
	GetMetrics() EventBusMetrics
}

// Event is a single mode-bus signal.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

// EventHandler consumes one event. Handlers run synchronously in the
// publisher's goroutine and should be quick.
type EventHandler func(Event) error

// Subscription is a cancellable handle to a registered handler.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel() error
}

// EventBusObserver receives delivery callbacks for metrics or tracing.
type EventBusObserver interface {
	OnPublish(eventType string, event Event)
	OnDelivered(eventType string, handlers int, err error, micros int64)
}

// EventBusMetrics is a best-effort counter snapshot.
type EventBusMetrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	SubscribersActive uint64
}
