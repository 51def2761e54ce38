package listbooks

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Books is the query result.
type Books struct {
	Books []core.Book `json:"books"`
	Count int         `json:"-"`
}
