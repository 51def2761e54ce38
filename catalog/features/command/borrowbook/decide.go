package borrowbook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide determines whether the book can be lent.
//
// Business Rules:
//
//	GIVEN: A book with BookID
//	WHEN: BorrowBook command is received
//	THEN: BookBorrowed event with the next borrowing id, due Days after OccurredAt
//	ERROR: "Borrowing days must be between 1 and 36500" if Days is out of range (invalid input)
//	ERROR: "Book not found" if no book has the id (not found)
//	ERROR: "Book is not available" if the book is on loan (invalid state)
func Decide(state core.State, command Command) core.DecisionResult {
	if command.Days <= 0 || command.Days > core.MaxBorrowingDays {
		return reject(command, core.KindInvalidInput, core.ReasonInvalidBorrowingDays)
	}

	book, found := state.FindBook(command.BookID)
	if !found {
		return reject(command, core.KindNotFound, core.ReasonBookNotFound)
	}

	if !book.Available || state.HasActiveBorrowing(book.ID) {
		return reject(command, core.KindInvalidState, core.ReasonBookNotAvailable)
	}

	return core.SuccessDecision(
		core.BuildBookBorrowed(
			state.NextBorrowingID(),
			book.ID,
			command.BorrowerName,
			core.DueDateFor(command.OccurredAt, command.Days),
			command.OccurredAt,
		),
	)
}

func reject(command Command, kind core.ErrorKind, reason string) core.DecisionResult {
	event := core.BuildBorrowingBookFailed(command.BookID, command.BorrowerName, reason, command.OccurredAt)

	return core.ErrorDecision(event, core.NewError(kind, reason))
}
