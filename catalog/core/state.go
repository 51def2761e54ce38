package core

import (
	"time"
)

// State holds the two entity sequences of the catalog and their id counters.
// A State is a plain value: the store owns the authoritative one and hands out copies.
type State struct {
	books           []Book
	borrowings      []BorrowingRecord
	nextBookID      BookID
	nextBorrowingID BorrowingID
}

// NewState returns an empty State whose counters start at 1.
func NewState() State {
	return State{
		nextBookID:      1,
		nextBorrowingID: 1,
	}
}

// Clone returns a deep copy that shares no memory with s.
func (s State) Clone() State {
	clone := State{
		books:           make([]Book, len(s.books)),
		borrowings:      make([]BorrowingRecord, len(s.borrowings)),
		nextBookID:      s.nextBookID,
		nextBorrowingID: s.nextBorrowingID,
	}

	copy(clone.books, s.books)

	for i, record := range s.borrowings {
		if record.ReturnDate != nil {
			returnDate := *record.ReturnDate
			record.ReturnDate = &returnDate
		}

		clone.borrowings[i] = record
	}

	return clone
}

// NextBookID returns the id the next added book receives.
func (s State) NextBookID() BookID {
	return s.nextBookID
}

// NextBorrowingID returns the id the next borrowing record receives.
func (s State) NextBorrowingID() BorrowingID {
	return s.nextBorrowingID
}

// FindBook looks up a book by id. Absence is not an error.
func (s State) FindBook(id BookID) (Book, bool) {
	if i := s.bookIndex(id); i >= 0 {
		return s.books[i], true
	}

	return Book{}, false
}

// FindBorrowing looks up a borrowing record by id. Absence is not an error.
func (s State) FindBorrowing(id BorrowingID) (BorrowingRecord, bool) {
	if i := s.borrowingIndex(id); i >= 0 {
		return s.borrowings[i], true
	}

	return BorrowingRecord{}, false
}

// ListBooks returns all books in insertion order, or only those whose availability matches.
func (s State) ListBooks(available *bool) []Book {
	books := make([]Book, 0, len(s.books))

	for _, book := range s.books {
		if available != nil && book.Available != *available {
			continue
		}

		books = append(books, book)
	}

	return books
}

// ListBorrowings returns all records in insertion order, or only those with the given status.
// An empty status means no filter. StatusOverdue is evaluated against now.
func (s State) ListBorrowings(status string, now time.Time) []BorrowingRecord {
	records := make([]BorrowingRecord, 0, len(s.borrowings))

	for _, record := range s.borrowings {
		if status != "" && !record.HasStatus(status, now) {
			continue
		}

		records = append(records, record)
	}

	return records
}

// ResolveBookForBorrowing finds the book a record references.
// It returns false for records whose book was deleted.
func (s State) ResolveBookForBorrowing(record BorrowingRecord) (Book, bool) {
	return s.FindBook(record.BookID)
}

// ActiveBorrowingFor returns the active record that references the book, if any.
func (s State) ActiveBorrowingFor(bookID BookID) (BorrowingRecord, bool) {
	for _, record := range s.borrowings {
		if record.BookID == bookID && record.IsActive() {
			return record, true
		}
	}

	return BorrowingRecord{}, false
}

// HasActiveBorrowing reports whether an active record references the book.
func (s State) HasActiveBorrowing(bookID BookID) bool {
	_, found := s.ActiveBorrowingFor(bookID)

	return found
}

// Apply evolves the state by one success event. Failure events leave it untouched.
func (s *State) Apply(event DomainEvent) {
	switch e := event.(type) {
	case BookAdded:
		s.books = append(s.books, Book{
			ID:        e.BookID,
			Title:     e.Title,
			Author:    e.Author,
			ISBN:      e.ISBN,
			Category:  e.Category,
			Available: true,
		})

		if e.BookID >= s.nextBookID {
			s.nextBookID = e.BookID + 1
		}

	case BookUpdated:
		if i := s.bookIndex(e.BookID); i >= 0 {
			s.books[i].Title = e.Title
			s.books[i].Author = e.Author
			s.books[i].ISBN = e.ISBN
			s.books[i].Category = e.Category
			s.books[i].Available = e.Available
		}

	case BookDeleted:
		if i := s.bookIndex(e.BookID); i >= 0 {
			s.books = append(s.books[:i:i], s.books[i+1:]...)
		}

	case BookBorrowed:
		s.borrowings = append(s.borrowings, BorrowingRecord{
			ID:           e.BorrowingID,
			BookID:       e.BookID,
			BorrowerName: e.BorrowerName,
			BorrowDate:   e.OccurredAt,
			DueDate:      e.DueDate,
			Status:       StatusBorrowed,
		})

		if i := s.bookIndex(e.BookID); i >= 0 {
			s.books[i].Available = false
		}

		if e.BorrowingID >= s.nextBorrowingID {
			s.nextBorrowingID = e.BorrowingID + 1
		}

	case BookReturned:
		if i := s.borrowingIndex(e.BorrowingID); i >= 0 {
			returnDate := e.OccurredAt
			s.borrowings[i].ReturnDate = &returnDate
			s.borrowings[i].Status = StatusReturned
		}

		// orphaned records have no book to restore
		if i := s.bookIndex(e.BookID); i >= 0 {
			s.books[i].Available = true
		}
	}
}

func (s State) bookIndex(id BookID) int {
	for i, book := range s.books {
		if book.ID == id {
			return i
		}
	}

	return -1
}

func (s State) borrowingIndex(id BorrowingID) int {
	for i, record := range s.borrowings {
		if record.ID == id {
			return i
		}
	}

	return -1
}
