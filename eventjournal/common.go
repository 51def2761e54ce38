package eventjournal

import (
	"context"
	"errors"
)

var (
	// ErrEmptyTableNameSupplied is returned when an engine is configured with an empty table name.
	ErrEmptyTableNameSupplied = errors.New("empty table name supplied")

	// ErrNilDatabaseConnection is returned when an engine is constructed without a connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrAppendingEventFailed is returned when events could not be written to the journal.
	ErrAppendingEventFailed = errors.New("appending event to journal failed")

	// ErrQueryingEventsFailed is returned when reading events from the journal failed.
	ErrQueryingEventsFailed = errors.New("querying events from journal failed")

	// ErrScanningDBRowFailed is returned when a journal row could not be scanned.
	ErrScanningDBRowFailed = errors.New("scanning db row failed")

	// ErrBuildingStorableEventFailed is returned when a journal row does not hold a valid event.
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")
)

// SequenceNumberUint is the position of an event in the journal, starting at 1.
type SequenceNumberUint = uint64

// Journal is the append-only audit outlet for catalog events.
type Journal interface {
	Append(ctx context.Context, event StorableEvent, additionalEvents ...StorableEvent) error
	Query(ctx context.Context, filter Filter) (StorableEvents, error)
}
