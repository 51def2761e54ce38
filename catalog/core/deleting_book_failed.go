package core

import (
	"time"
)

// DeletingBookFailedEventType is the event type identifier.
const DeletingBookFailedEventType = "DeletingBookFailed"

// DeletingBookFailed represents when deleting a book is rejected by a business rule.
type DeletingBookFailed struct {
	EventType   EventTypeString
	BookID      BookID
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildDeletingBookFailed creates a new DeletingBookFailed event.
func BuildDeletingBookFailed(bookID BookID, failureInfo string, occurredAt time.Time) DeletingBookFailed {
	return DeletingBookFailed{
		EventType:   DeletingBookFailedEventType,
		BookID:      bookID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e DeletingBookFailed) IsEventType() string {
	return DeletingBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e DeletingBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e DeletingBookFailed) IsErrorEvent() bool {
	return true
}
