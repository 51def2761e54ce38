package core

import (
	"time"
)

// BookDeletedEventType is the event type identifier.
const BookDeletedEventType = "BookDeleted"

// BookDeleted represents when a book is removed from the catalog.
// Borrowing records that reference the book are kept.
type BookDeleted struct {
	EventType  EventTypeString
	BookID     BookID
	OccurredAt OccurredAtTS
}

// BuildBookDeleted creates a new BookDeleted event.
func BuildBookDeleted(bookID BookID, occurredAt time.Time) BookDeleted {
	return BookDeleted{
		EventType:  BookDeletedEventType,
		BookID:     bookID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookDeleted) IsEventType() string {
	return BookDeletedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookDeleted) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookDeleted) IsErrorEvent() bool {
	return false
}
