package core

import (
	"time"
)

const (
	// StatusBorrowed marks an active borrowing.
	StatusBorrowed = "borrowed"

	// StatusReturned marks a terminated borrowing.
	StatusReturned = "returned"

	// StatusOverdue is never stored. It is derived for borrowed records whose due date has passed.
	StatusOverdue = "overdue"
)

// BorrowingRecord is one loan of a book to a borrower.
// ReturnDate is set if and only if Status is StatusReturned.
type BorrowingRecord struct {
	ID           BorrowingID `json:"id"`
	BookID       BookID      `json:"bookId"`
	BorrowerName string      `json:"borrowerName"`
	BorrowDate   time.Time   `json:"borrowDate"`
	DueDate      time.Time   `json:"dueDate"`
	ReturnDate   *time.Time  `json:"returnDate"`
	Status       string      `json:"status"`
}

// IsActive reports whether the record has not been returned yet.
func (r BorrowingRecord) IsActive() bool {
	return r.Status == StatusBorrowed
}

// IsOverdue reports whether the record is still active after its due date.
func (r BorrowingRecord) IsOverdue(now time.Time) bool {
	return r.IsActive() && r.DueDate.Before(now)
}

// HasStatus reports whether the record matches a status filter.
// StatusOverdue matches overdue records, every other value is compared with the stored status.
func (r BorrowingRecord) HasStatus(status string, now time.Time) bool {
	if status == StatusOverdue {
		return r.IsOverdue(now)
	}

	return r.Status == status
}

// BorrowingView is a borrowing record together with its derived fields.
// Book is resolved from the catalog at read time and is nil for orphaned records.
type BorrowingView struct {
	BorrowingRecord
	Book    *Book `json:"book"`
	Overdue bool  `json:"overdue"`
}

// BuildBorrowingView resolves the derived fields of a record against the state.
func BuildBorrowingView(s State, record BorrowingRecord, now time.Time) BorrowingView {
	view := BorrowingView{
		BorrowingRecord: record,
		Overdue:         record.IsOverdue(now),
	}

	if book, found := s.ResolveBookForBorrowing(record); found {
		view.Book = &book
	}

	return view
}
