package eventjournal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
)

func Test_BuildStorableEvent_ErrorCases(t *testing.T) {
	validTime := time.Now()
	validPayloadJSON := []byte(`{"key": "value"}`)
	validMetadataJSON := []byte(`{"meta": "data"}`)

	tests := []struct {
		name         string
		eventType    string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{
			name:         "empty event type",
			eventType:    "",
			payloadJSON:  validPayloadJSON,
			metadataJSON: validMetadataJSON,
			expectedErr:  eventjournal.ErrEmptyEventType,
		},
		{
			name:         "invalid payload JSON",
			eventType:    "TestEvent",
			payloadJSON:  []byte(`{"invalid": json}`),
			metadataJSON: validMetadataJSON,
			expectedErr:  eventjournal.ErrInvalidPayloadJSON,
		},
		{
			name:         "invalid metadata JSON",
			eventType:    "TestEvent",
			payloadJSON:  validPayloadJSON,
			metadataJSON: []byte(`{"invalid": json}`),
			expectedErr:  eventjournal.ErrInvalidMetadataJSON,
		},
		{
			name:         "nil payload JSON",
			eventType:    "TestEvent",
			payloadJSON:  nil,
			metadataJSON: validMetadataJSON,
			expectedErr:  eventjournal.ErrInvalidPayloadJSON,
		},
		{
			name:         "empty metadata JSON",
			eventType:    "TestEvent",
			payloadJSON:  validPayloadJSON,
			metadataJSON: []byte(``),
			expectedErr:  eventjournal.ErrInvalidMetadataJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eventjournal.BuildStorableEvent(tt.eventType, "book-1", validTime, tt.payloadJSON, tt.metadataJSON)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_BuildStorableEventWithEmptyMetadata(t *testing.T) {
	// arrange
	occurredAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	// act
	event, err := eventjournal.BuildStorableEventWithEmptyMetadata("BookAdded", "book-7", occurredAt, []byte(`{"BookID":7}`))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "BookAdded", event.EventType)
	assert.Equal(t, "book-7", event.StreamID)
	assert.Equal(t, occurredAt, event.OccurredAt)
	assert.JSONEq(t, `{"BookID":7}`, string(event.PayloadJSON))
	assert.JSONEq(t, `{}`, string(event.MetadataJSON))
	assert.Zero(t, event.SequenceNumber, "sequence number is only assigned by an engine")
	assert.Equal(t, eventjournal.SequenceNumberUint(3), event.WithSequenceNumber(3).SequenceNumber)
}
