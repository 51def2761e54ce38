// Package eventjournal provides the core abstractions of the catalog's audit journal.
//
// Every decision taken by a catalog command (successful or failed) is recorded as an event in an
// append-only journal. The journal is an outlet: the catalog never rebuilds its state from it.
//
// This package defines the types shared by the journal engines:
//   - StorableEvent: a scalar DTO, agnostic of the domain event implementation
//   - Filter: criteria for reading events back (event types, stream, time range, limit)
//   - Journal: the interface implemented by memoryengine and sqlengine
//   - Logger, ContextualLogger, MetricsCollector, TracingCollector: dependency-free
//     observability interfaces, implemented for OpenTelemetry in oteladapters
//
// Common usage pattern:
//
//	filter := eventjournal.BuildFilter().
//		OfEventTypes(core.BookBorrowedEventType, core.BookReturnedEventType).
//		InStream("book-3").
//		Finalize()
//
//	events, err := journal.Query(ctx, filter)
package eventjournal
