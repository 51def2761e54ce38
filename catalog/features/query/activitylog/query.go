package activitylog

import (
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	queryType = "ActivityLog"
)

// Query represents the intent to read catalog activity.
//
// A zero BookID selects the activity of all books. Empty EventTypes select all types.
// Zero From and Until leave the time range open. Limit keeps only the most recent entries.
type Query struct {
	BookID     core.BookID
	EventTypes []string
	From       time.Time
	Until      time.Time
	Limit      int
}

// BuildQuery creates a Query for the activity of one book, or of all books if bookID is 0.
func BuildQuery(bookID core.BookID, limit int, eventTypes ...string) Query {
	return Query{
		BookID:     bookID,
		EventTypes: eventTypes,
		Limit:      limit,
	}
}

// Between returns a copy of the query restricted to events that occurred within [from, until].
func (q Query) Between(from, until time.Time) Query {
	q.From = from
	q.Until = until

	return q
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
