package getbook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	queryType = "GetBook"
)

// Query represents the intent to look up a book.
type Query struct {
	BookID core.BookID
}

// BuildQuery creates a new Query with the provided book ID.
func BuildQuery(bookID core.BookID) Query {
	return Query{BookID: bookID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
