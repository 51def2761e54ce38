package getborrowing

import (
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	queryType = "GetBorrowing"
)

// Query represents the intent to look up a borrowing record.
// At is the instant overdue is evaluated against.
type Query struct {
	BorrowingID core.BorrowingID
	At          time.Time
}

// BuildQuery creates a new Query.
func BuildQuery(borrowingID core.BorrowingID, at time.Time) Query {
	return Query{BorrowingID: borrowingID, At: at}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
