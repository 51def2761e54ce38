package listborrowings

import (
	"time"
)

const (
	queryType = "ListBorrowings"
)

// Query represents the intent to list borrowing records.
// An empty Status returns all records. At is the instant overdue is evaluated against.
type Query struct {
	Status string
	At     time.Time
}

// BuildQuery creates a new Query.
func BuildQuery(status string, at time.Time) Query {
	return Query{Status: status, At: at}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
