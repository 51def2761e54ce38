package addbook_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/addbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/catalog/store"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal/memoryengine"
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	ctx := context.Background()
	now := time.Now()
	catalog := store.NewSeeded(now)
	journal := memoryengine.NewJournal()
	handler := addbook.NewCommandHandler(catalog, shell.NewEventRecorder(journal))

	// act
	book, result, err := handler.Handle(ctx, addbook.BuildCommand("Dune", "Frank Herbert", "978-0-441-17271-9", "Science Fiction", now))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)
	assert.Equal(t, core.Book{
		ID:        6,
		Title:     "Dune",
		Author:    "Frank Herbert",
		ISBN:      "978-0-441-17271-9",
		Category:  "Science Fiction",
		Available: true,
	}, book)

	state, _ := catalog.Snapshot()
	stored, found := state.FindBook(6)
	require.True(t, found)
	assert.Equal(t, book, stored)
	assert.Len(t, state.ListBooks(nil), 6)

	events, err := journal.Query(ctx, eventjournal.BuildFilter().InStream(shell.BookStreamID(6)).Finalize())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, core.BookAddedEventType, events[0].EventType)
}

func Test_CommandHandler_Handle_NeverReusesIDs(t *testing.T) {
	// arrange
	ctx := context.Background()
	now := time.Now()
	catalog := store.NewSeeded(now)
	handler := addbook.NewCommandHandler(catalog, nil)

	first, _, err := handler.Handle(ctx, addbook.BuildCommand("A", "A", "A", "A", now))
	require.NoError(t, err)

	_, err = catalog.Apply(ctx, catalog.Version(), core.BuildBookDeleted(first.ID, now))
	require.NoError(t, err)

	// act
	second, _, err := handler.Handle(ctx, addbook.BuildCommand("B", "B", "B", "B", now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func Test_CommandHandler_Handle_JournalsInApplyOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	now := time.Now()
	catalog := store.NewSeeded(now)
	journal := memoryengine.NewJournal()
	handler := addbook.NewCommandHandler(
		catalog,
		shell.NewEventRecorder(journal),
		addbook.WithRetryOptions(shell.WithMaxAttempts(100), shell.WithBaseDelay(0)),
	)

	const writers = 20
	var wg sync.WaitGroup

	// act
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := handler.Handle(ctx, addbook.BuildCommand("T", "A", "I", "C", now))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// assert
	storableEvents, err := journal.Query(ctx, eventjournal.MatchingAnyEvent())
	require.NoError(t, err)
	require.Len(t, storableEvents, writers)

	for i, storableEvent := range storableEvents {
		domainEvent, mapErr := shell.DomainEventFrom(storableEvent)
		require.NoError(t, mapErr)
		added, ok := domainEvent.(core.BookAdded)
		require.True(t, ok)
		assert.Equal(t, 6+i, added.BookID, "Journal order should follow the order of book ids")
	}
}
