package core

import (
	"time"
)

// BookUpdatedEventType is the event type identifier.
const BookUpdatedEventType = "BookUpdated"

// BookUpdated represents when the fields of a book are changed.
// It carries the complete resulting field values, not only the changed ones.
type BookUpdated struct {
	EventType  EventTypeString
	BookID     BookID
	Title      string
	Author     string
	ISBN       string
	Category   string
	Available  bool
	OccurredAt OccurredAtTS
}

// BuildBookUpdated creates a new BookUpdated event from the updated book.
func BuildBookUpdated(book Book, occurredAt time.Time) BookUpdated {
	return BookUpdated{
		EventType:  BookUpdatedEventType,
		BookID:     book.ID,
		Title:      book.Title,
		Author:     book.Author,
		ISBN:       book.ISBN,
		Category:   book.Category,
		Available:  book.Available,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookUpdated) IsEventType() string {
	return BookUpdatedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookUpdated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookUpdated) IsErrorEvent() bool {
	return false
}
