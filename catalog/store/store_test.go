package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/store"
)

func Test_NewSeeded_HoldsTheDemonstrationCatalog(t *testing.T) {
	// act
	s := store.NewSeeded(time.Now())

	// assert
	state, version := s.Snapshot()
	assert.Len(t, state.ListBooks(nil), 5)
	assert.Equal(t, store.Version(len(core.SeedEvents(time.Now()))), version)
}

func Test_Store_Apply_Success(t *testing.T) {
	// arrange
	ctx := context.Background()
	s := store.New()
	_, version := s.Snapshot()

	// act
	newVersion, err := s.Apply(ctx, version, core.BuildBookAdded(1, "Title", "Author", "ISBN", "Category", time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, version+1, newVersion)
	state, _ := s.Snapshot()
	_, found := state.FindBook(1)
	assert.True(t, found)
}

func Test_Store_Apply_ConcurrencyConflict_WhenVersionMoved(t *testing.T) {
	// arrange
	ctx := context.Background()
	s := store.New()
	_, staleVersion := s.Snapshot()
	_, err := s.Apply(ctx, staleVersion, core.BuildBookAdded(1, "A", "B", "C", "D", time.Now()))
	require.NoError(t, err)

	// act
	_, err = s.Apply(ctx, staleVersion, core.BuildBookAdded(1, "A", "B", "C", "D", time.Now()))

	// assert
	assert.ErrorIs(t, err, store.ErrConcurrencyConflict)
	state, _ := s.Snapshot()
	assert.Len(t, state.ListBooks(nil), 1, "the stale write must not be applied")
}

func Test_Store_Apply_RejectsFailureEventsAndNil(t *testing.T) {
	// arrange
	ctx := context.Background()
	s := store.New()

	// act
	_, failureErr := s.Apply(ctx, 0, core.BuildDeletingBookFailed(1, core.ReasonBookNotFound, time.Now()))
	_, nilErr := s.Apply(ctx, 0, nil)

	// assert
	assert.ErrorIs(t, failureErr, store.ErrFailureEventNotApplicable)
	assert.ErrorIs(t, nilErr, store.ErrNilEvent)
	assert.Equal(t, store.Version(0), s.Version())
}

func Test_Store_Apply_CanceledContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := store.New()

	// act
	_, err := s.Apply(ctx, 0, core.BuildBookAdded(1, "A", "B", "C", "D", time.Now()))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Store_Snapshot_IsIsolatedFromLaterWrites(t *testing.T) {
	// arrange
	ctx := context.Background()
	s := store.NewSeeded(time.Now())
	snapshot, version := s.Snapshot()

	// act
	_, err := s.Apply(ctx, version, core.BuildBookDeleted(2, time.Now()))

	// assert
	require.NoError(t, err)
	_, found := snapshot.FindBook(2)
	assert.True(t, found)
}

func Test_Store_Apply_OnlyOneOfConcurrentBorrowsWins(t *testing.T) {
	// arrange
	ctx := context.Background()
	now := time.Now()
	s := store.NewSeeded(now)
	_, version := s.Snapshot()

	const writers = 10
	var wg sync.WaitGroup
	results := make(chan error, writers)

	// act
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Apply(ctx, version, core.BuildBookBorrowed(3, 3, "X", now.Add(time.Hour), now))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	// assert
	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, store.ErrConcurrencyConflict)
	}
	assert.Equal(t, 1, succeeded)

	state, _ := s.Snapshot()
	assert.Len(t, state.ListBorrowings(core.StatusBorrowed, now), 2)
}

func Test_Store_Apply_RunsCommittedHooksInApplyOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	now := time.Now()
	s := store.New()

	const writers = 20
	var wg sync.WaitGroup
	var committed []store.Version

	// act
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				state, version := s.Snapshot()
				event := core.BuildBookAdded(state.NextBookID(), "T", "A", "I", "C", now)
				_, err := s.Apply(ctx, version, event, func(v store.Version) { committed = append(committed, v) })
				if err == nil {
					return
				}
				assert.ErrorIs(t, err, store.ErrConcurrencyConflict)
			}
		}()
	}
	wg.Wait()

	// assert
	require.Len(t, committed, writers)
	for i, version := range committed {
		assert.Equal(t, store.Version(i+1), version)
	}
}

func Test_Store_Apply_SkipsCommittedHooksOnConflict(t *testing.T) {
	ctx := context.Background()
	s := store.NewSeeded(time.Now())
	called := false

	_, err := s.Apply(ctx, s.Version()+1, core.BuildBookDeleted(2, time.Now()), func(store.Version) { called = true })

	assert.ErrorIs(t, err, store.ErrConcurrencyConflict)
	assert.False(t, called)
}
