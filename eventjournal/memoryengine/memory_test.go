package memoryengine_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal/memoryengine"
)

func storableEvent(t *testing.T, eventType, streamID string, at time.Time) eventjournal.StorableEvent {
	t.Helper()

	event, err := eventjournal.BuildStorableEventWithEmptyMetadata(eventType, streamID, at, []byte(`{}`))
	require.NoError(t, err)

	return event
}

func Test_Journal_Append_AssignsSequenceNumbers(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	now := time.Now()

	// act
	err := journal.Append(ctx,
		storableEvent(t, "BookAdded", "book-1", now),
		storableEvent(t, "BookBorrowed", "book-1", now),
	)
	require.NoError(t, err)
	err = journal.Append(ctx, storableEvent(t, "BookAdded", "book-2", now))
	require.NoError(t, err)

	// assert
	events, err := journal.Query(ctx, eventjournal.MatchingAnyEvent())
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, eventjournal.SequenceNumberUint(i+1), e.SequenceNumber)
	}
}

func Test_Journal_Query_AppliesFilterAndLimit(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	now := time.Now()

	for _, e := range []eventjournal.StorableEvent{
		storableEvent(t, "BookAdded", "book-1", now),
		storableEvent(t, "BookBorrowed", "book-1", now),
		storableEvent(t, "BookReturned", "book-1", now),
		storableEvent(t, "BookBorrowed", "book-2", now),
		storableEvent(t, "BookBorrowed", "book-1", now),
	} {
		require.NoError(t, journal.Append(ctx, e))
	}

	filter := eventjournal.BuildFilter().
		OfEventTypes("BookBorrowed").
		InStream("book-1").
		Limit(1).
		Finalize()

	// act
	events, err := journal.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, eventjournal.SequenceNumberUint(5), events[0].SequenceNumber)
}

func Test_Journal_Append_FailsOnCanceledContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	journal := memoryengine.NewJournal()

	// act
	err := journal.Append(ctx, storableEvent(t, "BookAdded", "book-1", time.Now()))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, journal.Len())
}

func Test_Journal_Append_IsSafeForConcurrentUse(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	event := storableEvent(t, "BookAdded", "book-1", time.Now())

	// act
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = journal.Append(ctx, event)
		}()
	}
	wg.Wait()

	// assert
	events, err := journal.Query(ctx, eventjournal.MatchingAnyEvent())
	require.NoError(t, err)
	assert.Len(t, events, 50)
	assert.Equal(t, eventjournal.SequenceNumberUint(50), events[49].SequenceNumber)
}
