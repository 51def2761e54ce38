package getbook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// ProjectBook looks up the queried book.
func ProjectBook(state core.State, query Query) BookLookup {
	book, found := state.FindBook(query.BookID)

	return BookLookup{Book: book, Found: found}
}
