package core

import (
	"time"
)

// ReturningBookFailedEventType is the event type identifier.
const ReturningBookFailedEventType = "ReturningBookFailed"

// ReturningBookFailed represents when returning a book is rejected by a business rule.
// BookID is 0 if the borrowing record does not exist.
type ReturningBookFailed struct {
	EventType   EventTypeString
	BorrowingID BorrowingID
	BookID      BookID
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildReturningBookFailed creates a new ReturningBookFailed event.
func BuildReturningBookFailed(
	borrowingID BorrowingID,
	bookID BookID,
	failureInfo string,
	occurredAt time.Time,
) ReturningBookFailed {

	return ReturningBookFailed{
		EventType:   ReturningBookFailedEventType,
		BorrowingID: borrowingID,
		BookID:      bookID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ReturningBookFailed) IsEventType() string {
	return ReturningBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e ReturningBookFailed) IsErrorEvent() bool {
	return true
}
