package listbooks

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// ProjectBooks selects the books the query asks for.
//
// Query Logic:
//
//	GIVEN: Any catalog
//	WHEN: ListBooks query is executed
//	THEN: all books in insertion order
//	EXCLUDES: books whose availability differs from Available, if it is given
func ProjectBooks(state core.State, query Query) Books {
	books := state.ListBooks(query.Available)

	return Books{
		Books: books,
		Count: len(books),
	}
}
