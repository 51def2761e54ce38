package core

import (
	"time"
)

// BookBorrowedEventType is the event type identifier.
const BookBorrowedEventType = "BookBorrowed"

// BookBorrowed represents when a book is lent to a borrower.
// The borrow date of the new record is OccurredAt.
type BookBorrowed struct {
	EventType    EventTypeString
	BorrowingID  BorrowingID
	BookID       BookID
	BorrowerName string
	DueDate      time.Time
	OccurredAt   OccurredAtTS
}

// BuildBookBorrowed creates a new BookBorrowed event.
func BuildBookBorrowed(
	borrowingID BorrowingID,
	bookID BookID,
	borrowerName string,
	dueDate time.Time,
	occurredAt time.Time,
) BookBorrowed {

	return BookBorrowed{
		EventType:    BookBorrowedEventType,
		BorrowingID:  borrowingID,
		BookID:       bookID,
		BorrowerName: borrowerName,
		DueDate:      ToOccurredAt(dueDate),
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookBorrowed) IsEventType() string {
	return BookBorrowedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookBorrowed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookBorrowed) IsErrorEvent() bool {
	return false
}
