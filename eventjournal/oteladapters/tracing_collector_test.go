package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal/oteladapters"
)

func newTracingCollector() (*oteladapters.TracingCollector, *tracetest.InMemoryExporter) {
	exporter := tracetest.NewInMemoryExporter()
	provider := trace.NewTracerProvider(trace.WithSyncer(exporter))

	return oteladapters.NewTracingCollector(provider.Tracer("test")), exporter
}

func assertSpanHasAttribute(t *testing.T, span tracetest.SpanStub, key, value string) {
	t.Helper()

	for _, attr := range span.Attributes {
		if attr.Key == attribute.Key(key) {
			assert.Equal(t, value, attr.Value.AsString(), "attribute %s", key)
			return
		}
	}

	t.Errorf("attribute %s not found on span %s", key, span.Name)
}

func Test_TracingCollector_StartAndFinishSpan(t *testing.T) {
	// arrange
	collector, exporter := newTracingCollector()

	// act
	ctx, spanCtx := collector.StartSpan(context.Background(), "commandhandler.handle", map[string]string{"command_type": "BorrowBook"})
	spanCtx.AddAttribute("book_id", "3")
	collector.FinishSpan(spanCtx, "success", map[string]string{"duration_ms": "1.50"})

	// assert
	assert.NotNil(t, ctx)
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "commandhandler.handle", span.Name)
	assertSpanHasAttribute(t, span, "command_type", "BorrowBook")
	assertSpanHasAttribute(t, span, "book_id", "3")
	assertSpanHasAttribute(t, span, "duration_ms", "1.50")
	assert.Equal(t, codes.Ok, span.Status.Code)
}

func Test_TracingCollector_StatusMapping(t *testing.T) {
	tests := []struct {
		status       string
		expectedCode codes.Code
	}{
		{"success", codes.Ok},
		{"idempotent", codes.Ok},
		{"error", codes.Error},
		{"canceled", codes.Error},
		{"timeout", codes.Error},
		{"concurrency_conflict", codes.Error},
		{"something_else", codes.Unset},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			// arrange
			collector, exporter := newTracingCollector()

			// act
			_, spanCtx := collector.StartSpan(context.Background(), "queryhandler.handle", nil)
			collector.FinishSpan(spanCtx, tt.status, nil)

			// assert
			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expectedCode, spans[0].Status.Code)
		})
	}
}
