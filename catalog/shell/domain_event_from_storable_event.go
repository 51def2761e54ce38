package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventjournal.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventjournal.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.BookAddedEventType:
		return unmarshalEvent[core.BookAdded](storableEvent.PayloadJSON)
	case core.BookUpdatedEventType:
		return unmarshalEvent[core.BookUpdated](storableEvent.PayloadJSON)
	case core.BookDeletedEventType:
		return unmarshalEvent[core.BookDeleted](storableEvent.PayloadJSON)
	case core.BookBorrowedEventType:
		return unmarshalEvent[core.BookBorrowed](storableEvent.PayloadJSON)
	case core.BookReturnedEventType:
		return unmarshalEvent[core.BookReturned](storableEvent.PayloadJSON)
	case core.UpdatingBookFailedEventType:
		return unmarshalEvent[core.UpdatingBookFailed](storableEvent.PayloadJSON)
	case core.DeletingBookFailedEventType:
		return unmarshalEvent[core.DeletingBookFailed](storableEvent.PayloadJSON)
	case core.BorrowingBookFailedEventType:
		return unmarshalEvent[core.BorrowingBookFailed](storableEvent.PayloadJSON)
	case core.ReturningBookFailedEventType:
		return unmarshalEvent[core.ReturningBookFailed](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalEvent[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var payload E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return payload, nil
}
