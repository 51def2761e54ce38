package getborrowing

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// ProjectBorrowing looks up the queried record and resolves its derived fields.
func ProjectBorrowing(state core.State, query Query) BorrowingLookup {
	record, found := state.FindBorrowing(query.BorrowingID)
	if !found {
		return BorrowingLookup{}
	}

	return BorrowingLookup{
		Borrowing: core.BuildBorrowingView(state, record, query.At),
		Found:     true,
	}
}
