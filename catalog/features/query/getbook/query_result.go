package getbook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// BookLookup is the query result. Book is the zero value when Found is false.
type BookLookup struct {
	Book  core.Book
	Found bool
}
