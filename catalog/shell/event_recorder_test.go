package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal/memoryengine"
	"github.com/AntonStoeckl/library-catalog-go/testutil/testdoubles"
)

type failingJournal struct{}

func (failingJournal) Append(context.Context, eventjournal.StorableEvent, ...eventjournal.StorableEvent) error {
	return errors.New("disk full")
}

func (failingJournal) Query(context.Context, eventjournal.Filter) (eventjournal.StorableEvents, error) {
	return nil, nil
}

func Test_EventRecorder_Record_AppendsToJournal(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	recorder := shell.NewEventRecorder(journal)

	// act
	recorded := recorder.Record(ctx, core.BuildBookAdded(6, "T", "A", "I", "C", time.Now()))

	// assert
	assert.True(t, recorded)
	events, err := journal.Query(ctx, eventjournal.MatchingAnyEvent())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "book-6", events[0].StreamID)
}

func Test_EventRecorder_Record_SurvivesCanceledRequest(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	journal := memoryengine.NewJournal()

	// act
	recorded := shell.NewEventRecorder(journal).Record(ctx, core.BuildBookDeleted(2, time.Now()))

	// assert
	assert.True(t, recorded)
	assert.Equal(t, 1, journal.Len())
}

func Test_EventRecorder_Record_LogsAndCountsFailures(t *testing.T) {
	// arrange
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	logger := testdoubles.NewContextualLoggerSpy(true)
	recorder := shell.NewEventRecorder(
		failingJournal{},
		shell.WithRecorderMetrics(metrics),
		shell.WithRecorderContextualLogging(logger),
	)

	// act
	recorded := recorder.Record(context.Background(), core.BuildBookDeleted(2, time.Now()))

	// assert
	assert.False(t, recorded)
	assert.True(t, logger.HasErrorLog(shell.LogMsgJournalAppendFailed))
	assert.True(t, metrics.HasCounterRecordForMetric(shell.JournalAppendFailuresMetric).
		WithLabel(shell.LogAttrEventType, core.BookDeletedEventType).
		Assert())
}

func Test_EventRecorder_Record_NilRecorderIsNoOp(t *testing.T) {
	var recorder *shell.EventRecorder

	assert.False(t, recorder.Record(context.Background(), core.BuildBookDeleted(2, time.Now())))
	assert.Nil(t, recorder.Journal())
}
