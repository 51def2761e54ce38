package returnbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/borrowbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/deletebook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/returnbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/catalog/store"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal/memoryengine"
)

func Test_CommandHandler_Handle_BorrowThenReturnRestoresAvailability(t *testing.T) {
	// arrange
	ctx := context.Background()
	now := time.Now()
	catalog := store.NewSeeded(now)
	journal := memoryengine.NewJournal()
	recorder := shell.NewEventRecorder(journal)

	borrowed, _, err := borrowbook.NewCommandHandler(catalog, recorder).
		Handle(ctx, borrowbook.BuildCommand(3, "X", core.Some(7), now))
	require.NoError(t, err)

	returnedAt := now.Add(time.Hour)

	// act
	record, _, err := returnbook.NewCommandHandler(catalog, recorder).
		Handle(ctx, returnbook.BuildCommand(borrowed.ID, returnedAt))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.StatusReturned, record.Status)
	require.NotNil(t, record.ReturnDate)
	assert.Equal(t, core.ToOccurredAt(returnedAt), *record.ReturnDate)

	state, _ := catalog.Snapshot()
	book, _ := state.FindBook(3)
	assert.True(t, book.Available)

	events, err := journal.Query(ctx, eventjournal.BuildFilter().InStream(shell.BookStreamID(3)).Finalize())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, core.BookBorrowedEventType, events[0].EventType)
	assert.Equal(t, core.BookReturnedEventType, events[1].EventType)
}

func Test_CommandHandler_Handle_Error_AlreadyReturned(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	catalog := store.NewSeeded(now)
	handler := returnbook.NewCommandHandler(catalog, nil)

	_, _, firstErr := handler.Handle(ctx, returnbook.BuildCommand(1, now))
	_, _, secondErr := handler.Handle(ctx, returnbook.BuildCommand(1, now))

	require.NoError(t, firstErr)
	assert.ErrorIs(t, secondErr, core.ErrInvalidState)
}

func Test_CommandHandler_Handle_Error_UnknownRecordIsJournaledInBorrowingStream(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	journal := memoryengine.NewJournal()
	handler := returnbook.NewCommandHandler(store.NewSeeded(now), shell.NewEventRecorder(journal))

	_, _, err := handler.Handle(ctx, returnbook.BuildCommand(42, now))

	assert.ErrorIs(t, err, core.ErrNotFound)
	events, queryErr := journal.Query(ctx, eventjournal.BuildFilter().InStream(shell.BorrowingStreamID(42)).Finalize())
	require.NoError(t, queryErr)
	assert.Len(t, events, 1)
}

func Test_CommandHandler_Handle_AcceptsOrphanedRecord(t *testing.T) {
	// arrange
	ctx := context.Background()
	now := time.Now()
	catalog := store.NewSeeded(now)

	borrowed, _, err := borrowbook.NewCommandHandler(catalog, nil).Handle(ctx, borrowbook.BuildCommand(2, "X", core.None[int](), now))
	require.NoError(t, err)

	// a borrowed book cannot be deleted through the use case, so force the orphan directly
	_, err = catalog.Apply(ctx, catalog.Version(), core.BuildBookDeleted(2, now))
	require.NoError(t, err)

	// act
	record, _, err := returnbook.NewCommandHandler(catalog, nil).Handle(ctx, returnbook.BuildCommand(borrowed.ID, now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.StatusReturned, record.Status)

	_, _, err = deletebook.NewCommandHandler(catalog, nil).Handle(ctx, deletebook.BuildCommand(2, now))
	assert.ErrorIs(t, err, core.ErrNotFound)
}
