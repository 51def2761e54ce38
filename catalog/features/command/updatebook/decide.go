package updatebook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide determines whether the patch can be applied to the book.
//
// Business Rules:
//
//	GIVEN: A book with BookID
//	WHEN: UpdateBook command is received
//	THEN: BookUpdated event with all attributes after patching
//	IDEMPOTENCY: If the patch changes nothing, no event is generated
//	ERROR: "Book not found" if no book has the id (not found)
//	ERROR: "Availability contradicts the borrowing state of the book" (invalid state)
func Decide(state core.State, command Command) core.DecisionResult {
	book, found := state.FindBook(command.BookID)
	if !found {
		return reject(command, core.KindNotFound, core.ReasonBookNotFound)
	}

	available := command.Patch.Available
	if available.Set && available.Value == state.HasActiveBorrowing(book.ID) {
		return reject(command, core.KindInvalidState, core.ReasonAvailabilityContradicted)
	}

	updated := command.Patch.ApplyTo(book)
	if updated == book {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.BuildBookUpdated(updated, command.OccurredAt))
}

func reject(command Command, kind core.ErrorKind, reason string) core.DecisionResult {
	event := core.BuildUpdatingBookFailed(command.BookID, reason, command.OccurredAt)

	return core.ErrorDecision(event, core.NewError(kind, reason))
}
