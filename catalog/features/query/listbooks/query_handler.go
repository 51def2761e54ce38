package listbooks

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

// QueryHandler answers the query from a snapshot of the store.
// External wrappers handle all observability concerns.
type QueryHandler struct {
	catalog shell.SnapshotsCatalog
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(catalog shell.SnapshotsCatalog) QueryHandler {
	return QueryHandler{catalog: catalog}
}

// Handle executes Snapshot -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Books, error) {
	if err := ctx.Err(); err != nil {
		return Books{}, err
	}

	state, _ := h.catalog.Snapshot()

	return ProjectBooks(state, query), nil
}
