package core

import (
	"time"
)

// BookAddedEventType is the event type identifier.
const BookAddedEventType = "BookAdded"

// BookAdded represents when a new book is added to the catalog.
type BookAdded struct {
	EventType  EventTypeString
	BookID     BookID
	Title      string
	Author     string
	ISBN       string
	Category   string
	OccurredAt OccurredAtTS
}

// BuildBookAdded creates a new BookAdded event.
func BuildBookAdded(bookID BookID, title, author, isbn, category string, occurredAt time.Time) BookAdded {
	return BookAdded{
		EventType:  BookAddedEventType,
		BookID:     bookID,
		Title:      title,
		Author:     author,
		ISBN:       isbn,
		Category:   category,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookAdded) IsEventType() string {
	return BookAddedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookAdded) IsErrorEvent() bool {
	return false
}
