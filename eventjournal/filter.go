package eventjournal

import (
	"slices"
	"time"
)

type FilterEventTypeString = string
type FilterStreamIDString = string

/***** Filter *****/

// Filter holds the criteria for reading events back from a Journal.
// All criteria are combined with AND; an empty Filter matches every event.
type Filter struct {
	eventTypes    []FilterEventTypeString
	streamID      FilterStreamIDString
	occurredFrom  time.Time
	occurredUntil time.Time
	limit         int
}

// EventTypes returns the sorted, deduplicated event types; empty means any type.
func (f Filter) EventTypes() []FilterEventTypeString {
	return f.eventTypes
}

// StreamID returns the stream the events must belong to; empty means any stream.
func (f Filter) StreamID() FilterStreamIDString {
	return f.streamID
}

// OccurredFrom returns the inclusive lower time bound; zero means unbounded.
func (f Filter) OccurredFrom() time.Time {
	return f.occurredFrom
}

// OccurredUntil returns the inclusive upper time bound; zero means unbounded.
func (f Filter) OccurredUntil() time.Time {
	return f.occurredUntil
}

// Limit returns the maximum number of events to return; 0 means no limit.
// When set, the most recent events are returned, still in journal order.
func (f Filter) Limit() int {
	return f.limit
}

// Matches reports whether the event satisfies all filter criteria.
// Engines that cannot push the filter down to a query language use it directly.
func (f Filter) Matches(event StorableEvent) bool {
	if len(f.eventTypes) > 0 && !slices.Contains(f.eventTypes, event.EventType) {
		return false
	}

	if f.streamID != "" && f.streamID != event.StreamID {
		return false
	}

	if !f.occurredFrom.IsZero() && event.OccurredAt.Before(f.occurredFrom) {
		return false
	}

	if !f.occurredUntil.IsZero() && event.OccurredAt.After(f.occurredUntil) {
		return false
	}

	return true
}

/***** FilterBuilder *****/

// FilterBuilder builds a journal Filter in a fluent style:
//
//	BuildFilter().OfEventTypes(a, b).InStream("book-3").OccurredFrom(t).Limit(20).Finalize()
//
// It sanitizes the input:
//   - removing empty EventTypes ("")
//   - sorting the EventTypes
//   - removing duplicate EventTypes
//   - ignoring negative limits
type FilterBuilder struct {
	filter Filter
}

// BuildFilter starts a new, empty FilterBuilder.
func BuildFilter() *FilterBuilder {
	return &FilterBuilder{}
}

// OfEventTypes adds one or multiple EventTypes.
func (b *FilterBuilder) OfEventTypes(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) *FilterBuilder {
	all := append([]FilterEventTypeString{eventType}, eventTypes...)
	all = append(all, b.filter.eventTypes...)

	all = slices.DeleteFunc(all, func(et FilterEventTypeString) bool { return et == "" })
	slices.Sort(all)
	b.filter.eventTypes = slices.Compact(all)

	return b
}

// InStream restricts the Filter to one stream.
func (b *FilterBuilder) InStream(streamID FilterStreamIDString) *FilterBuilder {
	b.filter.streamID = streamID
	return b
}

// OccurredFrom sets the inclusive lower time bound.
func (b *FilterBuilder) OccurredFrom(from time.Time) *FilterBuilder {
	b.filter.occurredFrom = from
	return b
}

// OccurredUntil sets the inclusive upper time bound.
func (b *FilterBuilder) OccurredUntil(until time.Time) *FilterBuilder {
	b.filter.occurredUntil = until
	return b
}

// Limit caps the number of returned events to the most recent ones.
func (b *FilterBuilder) Limit(limit int) *FilterBuilder {
	if limit < 0 {
		limit = 0
	}

	b.filter.limit = limit

	return b
}

// Finalize returns the built Filter.
func (b *FilterBuilder) Finalize() Filter {
	f := b.filter
	f.eventTypes = slices.Clone(b.filter.eventTypes)

	return f
}

// MatchingAnyEvent directly creates an empty Filter.
func MatchingAnyEvent() Filter {
	return Filter{}
}

// ApplyLimit keeps the last limit events of an ordered slice.
func ApplyLimit(events StorableEvents, limit int) StorableEvents {
	if limit <= 0 || len(events) <= limit {
		return events
	}

	return events[len(events)-limit:]
}
