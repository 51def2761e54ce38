package listborrowings

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// ProjectBorrowings selects the records the query asks for and resolves their books.
//
// Query Logic:
//
//	GIVEN: Any catalog
//	WHEN: ListBorrowings query is executed
//	THEN: all borrowing records in insertion order, each with its book and overdue flag
//	EXCLUDES: records that do not have Status, if it is given
func ProjectBorrowings(state core.State, query Query) Borrowings {
	records := state.ListBorrowings(query.Status, query.At)
	views := make([]core.BorrowingView, 0, len(records))

	for _, record := range records {
		views = append(views, core.BuildBorrowingView(state, record, query.At))
	}

	return Borrowings{
		Borrowings: views,
		Count:      len(views),
	}
}
