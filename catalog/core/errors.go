package core

import (
	"errors"
)

// ErrorKind classifies a rejected operation.
type ErrorKind string

const (
	// KindNotFound means a referenced book or borrowing record does not exist.
	KindNotFound ErrorKind = "not_found"

	// KindInvalidState means the entity is in a state that forbids the operation.
	KindInvalidState ErrorKind = "invalid_state"

	// KindInvalidInput means the request itself is malformed.
	KindInvalidInput ErrorKind = "invalid_input"
)

var (
	// ErrNotFound matches every *Error of kind KindNotFound via errors.Is.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState matches every *Error of kind KindInvalidState via errors.Is.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidInput matches every *Error of kind KindInvalidInput via errors.Is.
	ErrInvalidInput = errors.New("invalid input")
)

// Failure reasons, used both as error messages and as the FailureInfo of failure events.
const (
	ReasonBookNotFound             = "Book not found"
	ReasonBookNotAvailable         = "Book is not available"
	ReasonBorrowingNotFound        = "Borrowing record not found"
	ReasonAlreadyReturned          = "Book has already been returned"
	ReasonBookCurrentlyBorrowed    = "Cannot delete book that is currently borrowed"
	ReasonInvalidBorrowingDays     = "Borrowing days must be between 1 and 36500"
	ReasonAvailabilityContradicted = "Availability contradicts the borrowing state of the book"
	ReasonBookDeleted              = "Book deleted successfully"
)

// Error is a business rule violation with a human-readable reason.
type Error struct {
	Kind   ErrorKind
	Reason string
}

// NewError creates an *Error.
func NewError(kind ErrorKind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// Error returns the human-readable reason.
func (e *Error) Error() string {
	return e.Reason
}

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalidState:
		return e.Kind == KindInvalidState
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	default:
		return false
	}
}

// KindOf returns the kind of a domain error, or "" if err is not one.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}

	return ""
}
