// Package memoryengine provides the in-process implementation of the catalog's event journal.
//
// It holds events in a mutex-guarded slice and assigns gapless sequence numbers starting at 1.
// It is the default journal of the librarian CLI and the journal used in tests.
package memoryengine

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
)

const (
	logMsgEventsAppended = "events appended"
	logMsgQueryCompleted = "query completed"
	logAttrEventCount    = "event_count"
	logAttrFirstSequence = "first_sequence"
)

// Journal is an in-memory eventjournal.Journal.
type Journal struct {
	mu               sync.RWMutex
	events           eventjournal.StorableEvents
	logger           eventjournal.Logger
	contextualLogger eventjournal.ContextualLogger
}

// Option defines a functional option for configuring Journal.
type Option func(*Journal)

// WithLogger sets the logger for the Journal.
func WithLogger(logger eventjournal.Logger) Option {
	return func(j *Journal) {
		j.logger = logger
	}
}

// WithContextualLogger sets the contextual logger for the Journal.
func WithContextualLogger(logger eventjournal.ContextualLogger) Option {
	return func(j *Journal) {
		j.contextualLogger = logger
	}
}

// NewJournal creates an empty in-memory Journal.
func NewJournal(options ...Option) *Journal {
	j := &Journal{
		events: make(eventjournal.StorableEvents, 0),
	}

	for _, option := range options {
		option(j)
	}

	return j
}

// Append stores the events atomically, in the given order.
func (j *Journal) Append(ctx context.Context, event eventjournal.StorableEvent, additionalEvents ...eventjournal.StorableEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	allEvents := append(eventjournal.StorableEvents{event}, additionalEvents...)

	j.mu.Lock()
	first := eventjournal.SequenceNumberUint(len(j.events) + 1)
	for i, e := range allEvents {
		j.events = append(j.events, e.WithSequenceNumber(first+eventjournal.SequenceNumberUint(i)))
	}
	j.mu.Unlock()

	j.logDebug(ctx, logMsgEventsAppended, logAttrEventCount, len(allEvents), logAttrFirstSequence, first)

	return nil
}

// Query returns the events matching the filter in journal order.
func (j *Journal) Query(ctx context.Context, filter eventjournal.Filter) (eventjournal.StorableEvents, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	j.mu.RLock()
	matching := make(eventjournal.StorableEvents, 0)
	for _, e := range j.events {
		if filter.Matches(e) {
			matching = append(matching, e)
		}
	}
	j.mu.RUnlock()

	matching = eventjournal.ApplyLimit(matching, filter.Limit())
	j.logDebug(ctx, logMsgQueryCompleted, logAttrEventCount, len(matching))

	return matching, nil
}

// Len returns the number of journaled events.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return len(j.events)
}

func (j *Journal) logDebug(ctx context.Context, msg string, args ...any) {
	if j.contextualLogger != nil {
		j.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if j.logger != nil {
		j.logger.Debug(msg, args...)
	}
}

var _ eventjournal.Journal = (*Journal)(nil)
