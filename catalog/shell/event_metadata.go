package shell

import (
	"context"
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
)

// ErrMappingToEventMetadataFailed is returned when metadata conversion fails.
var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the message that caused this event.
type CausationID = string

// CorrelationID represents the ID correlating related events.
type CorrelationID = string

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID     MessageID
	CausationID   CausationID
	CorrelationID CorrelationID
}

// BuildEventMetadata creates EventMetadata from UUID values.
func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// EventMetadataFor creates the metadata of an event produced while serving ctx.
// The correlation id is taken from ctx, a fresh one is generated if ctx carries none.
// The request itself is the cause, so causation and correlation are equal.
func EventMetadataFor(ctx context.Context) EventMetadata {
	correlationID, ok := CorrelationIDFrom(ctx)
	if !ok {
		correlationID = uuid.NewString()
	}

	return EventMetadata{
		MessageID:     uuid.NewString(),
		CausationID:   correlationID,
		CorrelationID: correlationID,
	}
}

// EventMetadataFrom extracts EventMetadata from a StorableEvent.
func EventMetadataFrom(storableEvent eventjournal.StorableEvent) (EventMetadata, error) {
	metadata := new(EventMetadata)

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return *metadata, nil
}

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying the correlation id of the current request.
func WithCorrelationID(ctx context.Context, correlationID CorrelationID) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// CorrelationIDFrom returns the correlation id carried by ctx.
func CorrelationIDFrom(ctx context.Context) (CorrelationID, bool) {
	correlationID, ok := ctx.Value(correlationIDKey{}).(CorrelationID)

	return correlationID, ok && correlationID != ""
}
