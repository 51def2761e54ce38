package activitylog

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
)

// ErrNoJournalConfigured is returned when the catalog runs without an event journal.
var ErrNoJournalConfigured = errors.New("no event journal configured")

// EventJournal defines the interface needed by the QueryHandler for journal operations.
type EventJournal interface {
	Query(ctx context.Context, filter eventjournal.Filter) (eventjournal.StorableEvents, error)
}

// QueryHandler orchestrates the query processing workflow: Query -> Unmarshal -> Project.
// External wrappers handle all observability concerns.
type QueryHandler struct {
	journal EventJournal
}

// NewQueryHandler creates a new QueryHandler. The journal may be nil; Handle fails then.
func NewQueryHandler(journal EventJournal) QueryHandler {
	return QueryHandler{journal: journal}
}

// Handle reads the matching events from the journal and projects them into entries.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Activity, error) {
	if h.journal == nil {
		return Activity{}, ErrNoJournalConfigured
	}

	storableEvents, err := h.journal.Query(ctx, BuildJournalFilter(query))
	if err != nil {
		return Activity{}, err
	}

	return ProjectActivity(storableEvents)
}
