package activitylog

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
)

// ProjectActivity turns journaled events into entries.
//
// Query Logic:
//
//	GIVEN: The events the journal returned for the filter
//	WHEN: ActivityLog query is executed
//	THEN: one Entry per event in journal order
//	INCLUDES: failure events with their reason
func ProjectActivity(storableEvents eventjournal.StorableEvents) (Activity, error) {
	entries := make([]Entry, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := shell.DomainEventFrom(storableEvent)
		if err != nil {
			return Activity{}, err
		}

		entry := Entry{
			SequenceNumber: storableEvent.SequenceNumber,
			EventType:      domainEvent.IsEventType(),
			OccurredAt:     domainEvent.HasOccurredAt(),
			Failed:         domainEvent.IsErrorEvent(),
		}
		fillEntryDetails(&entry, domainEvent)

		entries = append(entries, entry)
	}

	return Activity{
		Entries: entries,
		Count:   len(entries),
	}, nil
}

func fillEntryDetails(entry *Entry, event core.DomainEvent) {
	switch e := event.(type) {
	case core.BookAdded:
		entry.BookID = e.BookID
	case core.BookUpdated:
		entry.BookID = e.BookID
	case core.BookDeleted:
		entry.BookID = e.BookID
	case core.BookBorrowed:
		entry.BookID = e.BookID
		entry.BorrowingID = e.BorrowingID
		entry.BorrowerName = e.BorrowerName
	case core.BookReturned:
		entry.BookID = e.BookID
		entry.BorrowingID = e.BorrowingID
	case core.UpdatingBookFailed:
		entry.BookID = e.BookID
		entry.Reason = e.FailureInfo
	case core.DeletingBookFailed:
		entry.BookID = e.BookID
		entry.Reason = e.FailureInfo
	case core.BorrowingBookFailed:
		entry.BookID = e.BookID
		entry.BorrowerName = e.BorrowerName
		entry.Reason = e.FailureInfo
	case core.ReturningBookFailed:
		entry.BookID = e.BookID
		entry.BorrowingID = e.BorrowingID
		entry.Reason = e.FailureInfo
	}
}

// BuildJournalFilter translates the query into a journal filter.
func BuildJournalFilter(query Query) eventjournal.Filter {
	builder := eventjournal.BuildFilter().
		OccurredFrom(query.From).
		OccurredUntil(query.Until).
		Limit(query.Limit)

	if len(query.EventTypes) > 0 {
		builder = builder.OfEventTypes(query.EventTypes[0], query.EventTypes[1:]...)
	}

	if query.BookID != 0 {
		builder = builder.InStream(shell.BookStreamID(query.BookID))
	}

	return builder.Finalize()
}
