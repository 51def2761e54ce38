package listborrowings

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Borrowings is the query result.
type Borrowings struct {
	Borrowings []core.BorrowingView `json:"borrowings"`
	Count      int                  `json:"-"`
}
