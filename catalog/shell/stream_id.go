package shell

import (
	"strconv"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	bookStreamPrefix      = "book-"
	borrowingStreamPrefix = "borrowing-"
)

// BookStreamID returns the journal stream that collects all events of a book.
func BookStreamID(bookID core.BookID) string {
	return bookStreamPrefix + strconv.Itoa(bookID)
}

// BorrowingStreamID returns the journal stream of a borrowing record whose book is unknown.
func BorrowingStreamID(borrowingID core.BorrowingID) string {
	return borrowingStreamPrefix + strconv.Itoa(borrowingID)
}

// StreamIDFor returns the journal stream an event belongs to.
// Borrowing events go to the stream of their book, so a book's stream tells its whole history.
func StreamIDFor(event core.DomainEvent) string {
	switch e := event.(type) {
	case core.BookAdded:
		return BookStreamID(e.BookID)
	case core.BookUpdated:
		return BookStreamID(e.BookID)
	case core.BookDeleted:
		return BookStreamID(e.BookID)
	case core.BookBorrowed:
		return BookStreamID(e.BookID)
	case core.BookReturned:
		return BookStreamID(e.BookID)
	case core.UpdatingBookFailed:
		return BookStreamID(e.BookID)
	case core.DeletingBookFailed:
		return BookStreamID(e.BookID)
	case core.BorrowingBookFailed:
		return BookStreamID(e.BookID)
	case core.ReturningBookFailed:
		if e.BookID == 0 {
			return BorrowingStreamID(e.BorrowingID)
		}

		return BookStreamID(e.BookID)
	default:
		return ""
	}
}
