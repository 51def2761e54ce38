package shell

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
)

// EventRecorder writes decision events to the activity journal.
//
// The catalog state is already committed when an event is recorded, so a journal failure
// never fails the command: it is logged at error level and counted.
// A nil *EventRecorder, or one without a journal, records nothing.
type EventRecorder struct {
	journal          eventjournal.Journal
	metricsCollector MetricsCollector
	contextualLogger ContextualLogger
	logger           Logger
}

// RecorderOption configures an EventRecorder.
type RecorderOption func(*EventRecorder)

// WithRecorderMetrics sets the metrics collector that counts journal failures.
func WithRecorderMetrics(collector MetricsCollector) RecorderOption {
	return func(r *EventRecorder) {
		r.metricsCollector = collector
	}
}

// WithRecorderContextualLogging sets the contextual logger for journal failures.
func WithRecorderContextualLogging(logger ContextualLogger) RecorderOption {
	return func(r *EventRecorder) {
		r.contextualLogger = logger
	}
}

// WithRecorderLogging sets the basic logger for journal failures.
func WithRecorderLogging(logger Logger) RecorderOption {
	return func(r *EventRecorder) {
		r.logger = logger
	}
}

// NewEventRecorder creates an EventRecorder writing to journal.
func NewEventRecorder(journal eventjournal.Journal, opts ...RecorderOption) *EventRecorder {
	recorder := &EventRecorder{journal: journal}

	for _, opt := range opts {
		opt(recorder)
	}

	return recorder
}

// Journal returns the journal the recorder writes to.
func (r *EventRecorder) Journal() eventjournal.Journal {
	if r == nil {
		return nil
	}

	return r.journal
}

// Record journals the event with metadata derived from ctx.
// It reports whether the event reached the journal.
func (r *EventRecorder) Record(ctx context.Context, event core.DomainEvent) bool {
	if r == nil || r.journal == nil || event == nil {
		return false
	}

	// committed changes are journaled even if the request was canceled meanwhile
	ctx = context.WithoutCancel(ctx)

	storableEvent, err := StorableEventFrom(event, EventMetadataFor(ctx))
	if err == nil {
		err = r.journal.Append(ctx, storableEvent)
	}

	if err != nil {
		r.recordFailure(ctx, event, errors.Join(eventjournal.ErrAppendingEventFailed, err))
		return false
	}

	return true
}

func (r *EventRecorder) recordFailure(ctx context.Context, event core.DomainEvent, err error) {
	args := []any{
		LogAttrEventType, event.IsEventType(),
		LogAttrStreamID, StreamIDFor(event),
		LogAttrError, err.Error(),
	}

	if correlationID, ok := CorrelationIDFrom(ctx); ok {
		args = append(args, LogAttrCorrelationID, correlationID)
	}

	logError(ctx, r.logger, r.contextualLogger, LogMsgJournalAppendFailed, args...)

	if r.metricsCollector != nil {
		incrementCounter(ctx, r.metricsCollector, JournalAppendFailuresMetric, map[string]string{
			LogAttrEventType: event.IsEventType(),
		})
	}
}
