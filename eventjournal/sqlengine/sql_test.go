package sqlengine_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3" // driver registration
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal/sqlengine"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/testdoubles" //nolint:revive
)

func newSQLiteJournal(t *testing.T, options ...sqlengine.Option) *sqlengine.Journal {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1) // every connection would otherwise open its own in-memory database
	t.Cleanup(func() { _ = db.Close() })

	journal, err := sqlengine.NewJournalFromSQLiteDB(db, options...)
	require.NoError(t, err)
	require.NoError(t, journal.CreateSchema(context.Background()))

	return journal
}

func storableEvent(t *testing.T, eventType, streamID string, at time.Time, payload string) eventjournal.StorableEvent {
	t.Helper()

	event, err := eventjournal.BuildStorableEvent(eventType, streamID, at, []byte(payload), []byte(`{"CorrelationID":"c-1"}`))
	require.NoError(t, err)

	return event
}

func Test_SQLiteJournal_AppendAndQueryRoundTrip(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := newSQLiteJournal(t)
	at := time.Date(2025, 5, 1, 10, 30, 0, 123456789, time.UTC)

	// act
	err := journal.Append(ctx,
		storableEvent(t, "BookAdded", "book-6", at, `{"BookID":6,"Title":"Dune"}`),
		storableEvent(t, "BookBorrowed", "book-6", at.Add(time.Minute), `{"BookID":6,"BorrowingID":3}`),
	)
	require.NoError(t, err)

	events, err := journal.Query(ctx, eventjournal.MatchingAnyEvent())

	// assert
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, eventjournal.SequenceNumberUint(1), events[0].SequenceNumber)
	assert.Equal(t, "BookAdded", events[0].EventType)
	assert.Equal(t, "book-6", events[0].StreamID)
	assert.True(t, at.Equal(events[0].OccurredAt), "occurred_at should survive the round trip")
	assert.JSONEq(t, `{"BookID":6,"Title":"Dune"}`, string(events[0].PayloadJSON))
	assert.JSONEq(t, `{"CorrelationID":"c-1"}`, string(events[0].MetadataJSON))

	assert.Equal(t, eventjournal.SequenceNumberUint(2), events[1].SequenceNumber)
	assert.Equal(t, "BookBorrowed", events[1].EventType)
}

func Test_SQLiteJournal_Query_AppliesFilter(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := newSQLiteJournal(t, sqlengine.WithTableName("audit_events"))
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	for i, e := range []eventjournal.StorableEvent{
		storableEvent(t, "BookAdded", "book-1", base, `{}`),
		storableEvent(t, "BookBorrowed", "book-1", base.Add(1*time.Hour), `{}`),
		storableEvent(t, "BookBorrowed", "book-2", base.Add(2*time.Hour), `{}`),
		storableEvent(t, "BookReturned", "book-1", base.Add(3*time.Hour), `{}`),
		storableEvent(t, "BookBorrowed", "book-1", base.Add(4*time.Hour), `{}`),
	} {
		require.NoError(t, journal.Append(ctx, e), "append %d", i)
	}

	tests := []struct {
		name              string
		filter            eventjournal.Filter
		expectedSequences []eventjournal.SequenceNumberUint
	}{
		{
			name:              "by stream",
			filter:            eventjournal.BuildFilter().InStream("book-1").Finalize(),
			expectedSequences: []eventjournal.SequenceNumberUint{1, 2, 4, 5},
		},
		{
			name:              "by event types",
			filter:            eventjournal.BuildFilter().OfEventTypes("BookAdded", "BookReturned").Finalize(),
			expectedSequences: []eventjournal.SequenceNumberUint{1, 4},
		},
		{
			name: "by time range",
			filter: eventjournal.BuildFilter().
				OccurredFrom(base.Add(90 * time.Minute)).
				OccurredUntil(base.Add(3 * time.Hour)).
				Finalize(),
			expectedSequences: []eventjournal.SequenceNumberUint{3, 4},
		},
		{
			name:              "limited to the most recent",
			filter:            eventjournal.BuildFilter().InStream("book-1").Limit(2).Finalize(),
			expectedSequences: []eventjournal.SequenceNumberUint{4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			events, err := journal.Query(ctx, tt.filter)

			// assert
			require.NoError(t, err)
			sequences := make([]eventjournal.SequenceNumberUint, 0, len(events))
			for _, e := range events {
				sequences = append(sequences, e.SequenceNumber)
			}
			assert.Equal(t, tt.expectedSequences, sequences)
		})
	}
}

func Test_SQLiteJournal_CreateSchema_IsRepeatable(t *testing.T) {
	// arrange
	journal := newSQLiteJournal(t)

	// act
	err := journal.CreateSchema(context.Background())

	// assert
	assert.NoError(t, err)
}

func Test_SQLiteJournal_LogsExecutedSQL(t *testing.T) {
	// arrange
	logger := NewContextualLoggerSpy(true)
	journal := newSQLiteJournal(t, sqlengine.WithContextualLogger(logger))

	// act
	err := journal.Append(context.Background(), storableEvent(t, "BookAdded", "book-1", time.Now(), `{}`))

	// assert
	require.NoError(t, err)
	assert.True(t, logger.HasDebugLog("executed sql for: append"))
	assert.True(t, logger.HasInfoLog("journal schema ensured"))
}

func Test_NewJournal_ValidatesConfiguration(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = sqlengine.NewJournalFromSQLiteDB(nil)
	assert.ErrorIs(t, err, eventjournal.ErrNilDatabaseConnection)

	_, err = sqlengine.NewJournalFromSQLDB(nil)
	assert.ErrorIs(t, err, eventjournal.ErrNilDatabaseConnection)

	_, err = sqlengine.NewJournalFromSQLX(nil)
	assert.ErrorIs(t, err, eventjournal.ErrNilDatabaseConnection)

	_, err = sqlengine.NewJournalFromPGXPool(nil)
	assert.ErrorIs(t, err, eventjournal.ErrNilDatabaseConnection)

	_, err = sqlengine.NewJournalFromSQLiteDB(db, sqlengine.WithTableName(""))
	assert.ErrorIs(t, err, eventjournal.ErrEmptyTableNameSupplied)

	_, err = sqlengine.NewJournalFromSQLiteDB(db, sqlengine.WithTableName("events; DROP TABLE x"))
	assert.ErrorIs(t, err, sqlengine.ErrInvalidTableName)
}
