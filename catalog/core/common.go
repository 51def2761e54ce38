package core

import (
	"time"
)

// BookID identifies a book. IDs start at 1 and are never reused.
type BookID = int

// BorrowingID identifies a borrowing record. IDs start at 1 and are never reused.
type BorrowingID = int

// EventTypeString represents the type identifier of an event.
type EventTypeString = string

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// DefaultBorrowingDays is the loan period used when a borrow request does not supply one.
const DefaultBorrowingDays = 14

// MaxBorrowingDays bounds the loan period so the due date stays representable.
const MaxBorrowingDays = 36500

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// DueDateFor returns the due date of a loan that starts at borrowedAt and lasts the given days.
func DueDateFor(borrowedAt time.Time, days int) time.Time {
	return ToOccurredAt(borrowedAt).AddDate(0, 0, days)
}
