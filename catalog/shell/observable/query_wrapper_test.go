package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/observable"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/testdoubles" //nolint:revive
)

type mockQuery struct{}

func (q mockQuery) QueryType() string {
	return "TestQuery"
}

type mockQueryHandler struct {
	result []string
	err    error
}

func (h mockQueryHandler) Handle(context.Context, mockQuery) ([]string, error) {
	return h.result, h.err
}

func Test_QueryWrapper_Handle_Success(t *testing.T) {
	// arrange
	metricsCollector := NewMetricsCollectorSpy(true)
	tracingCollector := NewTracingCollectorSpy(true)
	contextualLogger := NewContextualLoggerSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, []string](
		mockQueryHandler{result: []string{"a", "b"}},
		observable.WithQueryMetrics[mockQuery, []string](metricsCollector),
		observable.WithQueryTracing[mockQuery, []string](tracingCollector),
		observable.WithQueryContextualLogging[mockQuery, []string](contextualLogger),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithLabel(shell.LogAttrQueryType, "TestQuery").
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.Equal(t, shell.SpanNameQueryHandle, tracingCollector.GetSpanRecords()[0].Name)
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgQueryCompleted))
}

func Test_QueryWrapper_Handle_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus string
	}{
		{"canceled", context.Canceled, shell.StatusCanceled},
		{"timeout", context.DeadlineExceeded, shell.StatusTimeout},
		{"other", errors.New("journal unavailable"), shell.StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// arrange
			metricsCollector := NewMetricsCollectorSpy(true)
			contextualLogger := NewContextualLoggerSpy(true)
			wrapper, err := observable.NewQueryWrapper[mockQuery, []string](
				mockQueryHandler{err: tt.err},
				observable.WithQueryMetrics[mockQuery, []string](metricsCollector),
				observable.WithQueryContextualLogging[mockQuery, []string](contextualLogger),
			)
			require.NoError(t, err)

			// act
			_, err = wrapper.Handle(context.Background(), mockQuery{})

			// assert
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
				WithStatus(tt.expectedStatus).
				Assert())
			assert.True(t, contextualLogger.HasErrorLog(shell.LogMsgQueryFailed))
		})
	}
}
