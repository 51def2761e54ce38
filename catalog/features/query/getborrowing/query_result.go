package getborrowing

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// BorrowingLookup is the query result. Borrowing is the zero value when Found is false.
type BorrowingLookup struct {
	Borrowing core.BorrowingView
	Found     bool
}
