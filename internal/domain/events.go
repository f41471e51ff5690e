package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogReplaced EventType = "CatalogReplaced"
	EventCatalogExtended EventType = "CatalogExtended"
	EventViewChanged     EventType = "ViewChanged"
	EventAreasLoaded     EventType = "AreasLoaded"
	EventDetailOpened    EventType = "DetailOpened"
	EventDetailClosed    EventType = "DetailClosed"
	EventLoadStarted     EventType = "LoadStarted"
	EventLoadCompleted   EventType = "LoadCompleted"
	EventLoadFailed      EventType = "LoadFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogReplacedEvent is emitted when the initial load replaces the catalog
type CatalogReplacedEvent struct {
	Count int
}

func (e CatalogReplacedEvent) Type() EventType { return EventCatalogReplaced }

// CatalogExtendedEvent is emitted when meals for a letter are appended
type CatalogExtendedEvent struct {
	Letter string
	Added  int
	Total  int
}

func (e CatalogExtendedEvent) Type() EventType { return EventCatalogExtended }

// ViewChangedEvent is emitted whenever the derived view is recomputed
type ViewChangedEvent struct {
	Count int
}

func (e ViewChangedEvent) Type() EventType { return EventViewChanged }

// AreasLoadedEvent is emitted when the area list arrives
type AreasLoadedEvent struct {
	Areas []string
}

func (e AreasLoadedEvent) Type() EventType { return EventAreasLoaded }

// DetailOpenedEvent is emitted when a meal detail is loaded and the modal opens
type DetailOpenedEvent struct {
	MealID string
}

func (e DetailOpenedEvent) Type() EventType { return EventDetailOpened }

// DetailClosedEvent is emitted when the modal closes
type DetailClosedEvent struct{}

func (e DetailClosedEvent) Type() EventType { return EventDetailClosed }

// LoadStartedEvent is emitted when a background load begins
type LoadStartedEvent struct {
	Letters []string
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// LoadCompletedEvent is emitted when a background load finishes
type LoadCompletedEvent struct {
	Total  int
	Failed int
}

func (e LoadCompletedEvent) Type() EventType { return EventLoadCompleted }

// LoadFailedEvent is emitted when a store operation fails
type LoadFailedEvent struct {
	Operation string
	Message   string
	Err       error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }
