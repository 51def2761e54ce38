package listbooks

const (
	queryType = "ListBooks"
)

// Query represents the intent to list the books of the catalog.
// Available is nil when all books are wanted.
type Query struct {
	Available *bool
}

// BuildQuery creates a Query that returns all books.
func BuildQuery() Query {
	return Query{}
}

// BuildQueryWithAvailability creates a Query that returns only books with the given availability.
func BuildQueryWithAvailability(available bool) Query {
	return Query{Available: &available}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
