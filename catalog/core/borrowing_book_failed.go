package core

import (
	"time"
)

// BorrowingBookFailedEventType is the event type identifier.
const BorrowingBookFailedEventType = "BorrowingBookFailed"

// BorrowingBookFailed represents when lending a book is rejected by a business rule.
type BorrowingBookFailed struct {
	EventType    EventTypeString
	BookID       BookID
	BorrowerName string
	FailureInfo  string
	OccurredAt   OccurredAtTS
}

// BuildBorrowingBookFailed creates a new BorrowingBookFailed event.
func BuildBorrowingBookFailed(
	bookID BookID,
	borrowerName string,
	failureInfo string,
	occurredAt time.Time,
) BorrowingBookFailed {

	return BorrowingBookFailed{
		EventType:    BorrowingBookFailedEventType,
		BookID:       bookID,
		BorrowerName: borrowerName,
		FailureInfo:  failureInfo,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BorrowingBookFailed) IsEventType() string {
	return BorrowingBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BorrowingBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e BorrowingBookFailed) IsErrorEvent() bool {
	return true
}
