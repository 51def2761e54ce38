package core

import (
	"time"
)

// UpdatingBookFailedEventType is the event type identifier.
const UpdatingBookFailedEventType = "UpdatingBookFailed"

// UpdatingBookFailed represents when updating a book is rejected by a business rule.
type UpdatingBookFailed struct {
	EventType   EventTypeString
	BookID      BookID
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildUpdatingBookFailed creates a new UpdatingBookFailed event.
func BuildUpdatingBookFailed(bookID BookID, failureInfo string, occurredAt time.Time) UpdatingBookFailed {
	return UpdatingBookFailed{
		EventType:   UpdatingBookFailedEventType,
		BookID:      bookID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e UpdatingBookFailed) IsEventType() string {
	return UpdatingBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e UpdatingBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e UpdatingBookFailed) IsErrorEvent() bool {
	return true
}
