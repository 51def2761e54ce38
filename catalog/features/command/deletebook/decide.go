package deletebook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide determines whether the book can be removed.
//
// Business Rules:
//
//	GIVEN: A book with BookID
//	WHEN: DeleteBook command is received
//	THEN: BookDeleted event
//	ERROR: "Book not found" if no book has the id (not found)
//	ERROR: "Cannot delete book that is currently borrowed" (invalid state)
func Decide(state core.State, command Command) core.DecisionResult {
	if _, found := state.FindBook(command.BookID); !found {
		return reject(command, core.KindNotFound, core.ReasonBookNotFound)
	}

	if state.HasActiveBorrowing(command.BookID) {
		return reject(command, core.KindInvalidState, core.ReasonBookCurrentlyBorrowed)
	}

	return core.SuccessDecision(core.BuildBookDeleted(command.BookID, command.OccurredAt))
}

func reject(command Command, kind core.ErrorKind, reason string) core.DecisionResult {
	event := core.BuildDeletingBookFailed(command.BookID, reason, command.OccurredAt)

	return core.ErrorDecision(event, core.NewError(kind, reason))
}
