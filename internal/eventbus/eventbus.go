package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"mealdeck/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCatalogReplaced = domain.EventCatalogReplaced
	EventCatalogExtended = domain.EventCatalogExtended
	EventViewChanged     = domain.EventViewChanged
	EventAreasLoaded     = domain.EventAreasLoaded
	EventDetailOpened    = domain.EventDetailOpened
	EventDetailClosed    = domain.EventDetailClosed
	EventLoadStarted     = domain.EventLoadStarted
	EventLoadCompleted   = domain.EventLoadCompleted
	EventLoadFailed      = domain.EventLoadFailed
)

// Re-export domain event types
type CatalogReplacedEvent = domain.CatalogReplacedEvent
type CatalogExtendedEvent = domain.CatalogExtendedEvent
type ViewChangedEvent = domain.ViewChangedEvent
type AreasLoadedEvent = domain.AreasLoadedEvent
type DetailOpenedEvent = domain.DetailOpenedEvent
type DetailClosedEvent = domain.DetailClosedEvent
type LoadStartedEvent = domain.LoadStartedEvent
type LoadCompletedEvent = domain.LoadCompletedEvent
type LoadFailedEvent = domain.LoadFailedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    int
	eventChan chan DomainEvent
	logger    *zap.Logger
	wg        sync.WaitGroup
	inflight  sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		logger:    logger.Named("eventbus"),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventViewChanged, EventCatalogExtended:
		// too frequent to log
	default:
		b.logger.Debug("publishing event", zap.String("type", string(event.Type())))
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event bus channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops dispatching and waits for running handlers to return
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
		b.inflight.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.inflight.Add(1)
				go func(h EventHandler, eventType EventType) {
					defer b.inflight.Done()
					defer func() {
						if r := recover(); r != nil {
							b.logger.Error("event handler panic",
								zap.String("type", string(eventType)),
								zap.Any("panic", r),
								zap.ByteString("stack", debug.Stack()))
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
