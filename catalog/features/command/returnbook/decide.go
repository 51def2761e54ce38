package returnbook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide determines whether the borrowing record can be closed.
//
// Business Rules:
//
//	GIVEN: A borrowing record with BorrowingID
//	WHEN: ReturnBook command is received
//	THEN: BookReturned event
//	ERROR: "Borrowing record not found" if no record has the id (not found)
//	ERROR: "Book has already been returned" if the record is not active (invalid state)
func Decide(state core.State, command Command) core.DecisionResult {
	record, found := state.FindBorrowing(command.BorrowingID)
	if !found {
		return reject(command, 0, core.KindNotFound, core.ReasonBorrowingNotFound)
	}

	if !record.IsActive() {
		return reject(command, record.BookID, core.KindInvalidState, core.ReasonAlreadyReturned)
	}

	return core.SuccessDecision(core.BuildBookReturned(record.ID, record.BookID, command.OccurredAt))
}

func reject(command Command, bookID core.BookID, kind core.ErrorKind, reason string) core.DecisionResult {
	event := core.BuildReturningBookFailed(command.BorrowingID, bookID, reason, command.OccurredAt)

	return core.ErrorDecision(event, core.NewError(kind, reason))
}
