package oteladapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal/oteladapters"
)

func newCollector() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return oteladapters.NewMetricsCollector(provider.Meter("test")), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	return resourceMetrics
}

func findMetric(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Metrics {
	t.Helper()

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name == name {
				return m
			}
		}
	}

	t.Fatalf("metric %s not found", name)

	return metricdata.Metrics{}
}

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	// arrange
	collector, reader := newCollector()
	labels := map[string]string{"command_type": "BorrowBook", "status": "success"}

	// act
	collector.RecordDurationContext(context.Background(), "commandhandler_handle_duration_seconds", 150*time.Millisecond, labels)

	// assert
	histogram, ok := findMetric(t, collect(t, reader), "commandhandler_handle_duration_seconds").Data.(metricdata.Histogram[float64])
	require.True(t, ok, "duration should be recorded as a float64 histogram")
	require.Len(t, histogram.DataPoints, 1)

	dataPoint := histogram.DataPoints[0]
	assert.Equal(t, uint64(1), dataPoint.Count)
	assert.InDelta(t, 0.15, dataPoint.Sum, 0.001)

	expectedAttrs := attribute.NewSet(
		attribute.String("command_type", "BorrowBook"),
		attribute.String("status", "success"),
	)
	assert.True(t, dataPoint.Attributes.Equals(&expectedAttrs))
}

func Test_MetricsCollector_IncrementCounter(t *testing.T) {
	// arrange
	collector, reader := newCollector()
	labels := map[string]string{"command_type": "ReturnBook"}

	// act
	collector.IncrementCounter("commandhandler_handle_calls_total", labels)
	collector.IncrementCounter("commandhandler_handle_calls_total", labels)
	collector.IncrementCounterContext(context.Background(), "commandhandler_handle_calls_total", labels)

	// assert
	sum, ok := findMetric(t, collect(t, reader), "commandhandler_handle_calls_total").Data.(metricdata.Sum[int64])
	require.True(t, ok, "counter should be recorded as an int64 sum")
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)
	assert.True(t, sum.IsMonotonic)
}

func Test_MetricsCollector_RecordValue(t *testing.T) {
	// arrange
	collector, reader := newCollector()

	// act
	collector.RecordValue("catalog_books_available", 4, nil)
	collector.RecordValueContext(context.Background(), "catalog_books_available", 3, nil)

	// assert
	gauge, ok := findMetric(t, collect(t, reader), "catalog_books_available").Data.(metricdata.Gauge[float64])
	require.True(t, ok, "value should be recorded as a float64 gauge")
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 3.0, gauge.DataPoints[0].Value, 0.0001)
}
