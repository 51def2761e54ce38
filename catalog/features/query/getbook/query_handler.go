package getbook

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

// QueryHandler answers the query from a snapshot of the store.
type QueryHandler struct {
	catalog shell.SnapshotsCatalog
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(catalog shell.SnapshotsCatalog) QueryHandler {
	return QueryHandler{catalog: catalog}
}

// Handle executes Snapshot -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BookLookup, error) {
	if err := ctx.Err(); err != nil {
		return BookLookup{}, err
	}

	state, _ := h.catalog.Snapshot()

	return ProjectBook(state, query), nil
}
