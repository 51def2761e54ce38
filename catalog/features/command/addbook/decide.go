package addbook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide creates the book with the next free id.
//
// Business Rules:
//
//	GIVEN: Any catalog
//	WHEN: AddBook command is received
//	THEN: BookAdded event with the next book id
func Decide(state core.State, command Command) core.DecisionResult {
	return core.SuccessDecision(
		core.BuildBookAdded(
			state.NextBookID(),
			command.Title,
			command.Author,
			command.ISBN,
			command.Category,
			command.OccurredAt,
		),
	)
}
