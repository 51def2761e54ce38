package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/activitylog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/service"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/catalog/store"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal/memoryengine"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/testdoubles" //nolint:revive
)

type fixture struct {
	catalog *service.Catalog
	journal *memoryengine.Journal
	metrics *MetricsCollectorSpy
	tracing *TracingCollectorSpy
	logger  *ContextualLoggerSpy
	now     time.Time
}

func givenSeededCatalog(t *testing.T) fixture {
	t.Helper()

	f := fixture{
		journal: memoryengine.NewJournal(),
		metrics: NewMetricsCollectorSpy(true),
		tracing: NewTracingCollectorSpy(true),
		logger:  NewContextualLoggerSpy(true),
		now:     time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}

	catalog, err := service.New(
		store.NewSeeded(f.now),
		f.journal,
		service.WithClock(func() time.Time { return f.now }),
		service.WithMetrics(f.metrics),
		service.WithTracing(f.tracing),
		service.WithContextualLogging(f.logger),
	)
	require.NoError(t, err)
	f.catalog = catalog

	return f
}

func Test_Catalog_New_RequiresStore(t *testing.T) {
	_, err := service.New(nil, nil)

	assert.ErrorIs(t, err, service.ErrNilStore)
}

func Test_Catalog_BorrowThenReturnScenario(t *testing.T) {
	// arrange
	ctx := context.Background()
	f := givenSeededCatalog(t)

	// act
	borrowed, err := f.catalog.BorrowBook(ctx, 3, "X", core.Some(7))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.StatusBorrowed, borrowed.Status)
	assert.Equal(t, f.now.AddDate(0, 0, 7), borrowed.DueDate)
	assert.False(t, borrowed.Overdue)
	require.NotNil(t, borrowed.Book)
	assert.False(t, borrowed.Book.Available)

	book, found, err := f.catalog.GetBook(ctx, 3)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, book.Available)

	// act
	returned, err := f.catalog.ReturnBook(ctx, borrowed.ID)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.StatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, f.now, *returned.ReturnDate)
	require.NotNil(t, returned.Book)
	assert.True(t, returned.Book.Available)

	book, _, err = f.catalog.GetBook(ctx, 3)
	require.NoError(t, err)
	assert.True(t, book.Available)

	_, err = f.catalog.ReturnBook(ctx, borrowed.ID)
	assert.ErrorIs(t, err, core.ErrInvalidState)
}

func Test_Catalog_BorrowBook_DefaultsToFourteenDays(t *testing.T) {
	f := givenSeededCatalog(t)

	borrowed, err := f.catalog.BorrowBook(context.Background(), 2, "Y", core.None[int]())

	require.NoError(t, err)
	assert.Equal(t, f.now.AddDate(0, 0, 14), borrowed.DueDate)
}

func Test_Catalog_BorrowBook_Errors(t *testing.T) {
	f := givenSeededCatalog(t)
	ctx := context.Background()

	_, err := f.catalog.BorrowBook(ctx, 1, "X", core.None[int]())
	assert.ErrorIs(t, err, core.ErrInvalidState)

	_, err = f.catalog.BorrowBook(ctx, 99, "X", core.None[int]())
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = f.catalog.BorrowBook(ctx, 2, "X", core.Some(0))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func Test_Catalog_DeleteBook_SoftResult(t *testing.T) {
	ctx := context.Background()
	f := givenSeededCatalog(t)

	tests := []struct {
		name     string
		bookID   core.BookID
		expected service.DeleteResult
	}{
		{name: "borrowed book", bookID: 1, expected: service.DeleteResult{Success: false, Message: core.ReasonBookCurrentlyBorrowed}},
		{name: "unknown book", bookID: 99, expected: service.DeleteResult{Success: false, Message: core.ReasonBookNotFound}},
		{name: "free book", bookID: 5, expected: service.DeleteResult{Success: true, Message: core.ReasonBookDeleted}},
		{name: "deleted book", bookID: 5, expected: service.DeleteResult{Success: false, Message: core.ReasonBookNotFound}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.catalog.DeleteBook(ctx, tt.bookID)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	books, err := f.catalog.ListBooks(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, books, 4)
}

func Test_Catalog_DeleteBook_CanceledContextIsAnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := givenSeededCatalog(t)

	_, err := f.catalog.DeleteBook(ctx, 5)

	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Catalog_AddAndUpdateBook(t *testing.T) {
	// arrange
	ctx := context.Background()
	f := givenSeededCatalog(t)

	// act
	added, err := f.catalog.AddBook(ctx, "Dune", "Frank Herbert", "978-0-441-17271-9", "Science Fiction")
	require.NoError(t, err)
	updated, err := f.catalog.UpdateBook(ctx, added.ID, core.BookPatch{Author: core.Some("F. Herbert")})

	// assert
	require.NoError(t, err)
	assert.Equal(t, 6, added.ID)
	assert.Equal(t, "F. Herbert", updated.Author)
	assert.Equal(t, "Dune", updated.Title)

	available := true
	books, err := f.catalog.ListBooks(ctx, &available)
	require.NoError(t, err)
	assert.Len(t, books, 5)

	_, err = f.catalog.UpdateBook(ctx, 99, core.BookPatch{Title: core.Some("X")})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func Test_Catalog_ListAndGetBorrowings(t *testing.T) {
	ctx := context.Background()
	f := givenSeededCatalog(t)

	all, err := f.catalog.ListBorrowings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	returned, err := f.catalog.ListBorrowings(ctx, core.StatusReturned)
	require.NoError(t, err)
	require.Len(t, returned, 1)
	assert.Equal(t, 2, returned[0].ID)

	view, found, err := f.catalog.GetBorrowing(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Ahmad Rizki", view.BorrowerName)

	_, found, err = f.catalog.GetBorrowing(ctx, 42)
	require.NoError(t, err)
	assert.False(t, found)
}

func Test_Catalog_Activity(t *testing.T) {
	ctx := context.Background()
	f := givenSeededCatalog(t)

	_, err := f.catalog.BorrowBook(ctx, 1, "X", core.None[int]())
	require.Error(t, err)
	_, err = f.catalog.BorrowBook(ctx, 2, "X", core.None[int]())
	require.NoError(t, err)

	entries, err := f.catalog.Activity(ctx, activitylog.BuildQuery(0, 0))

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Failed)
	assert.Equal(t, core.ReasonBookNotAvailable, entries[0].Reason)
	assert.Equal(t, core.BookBorrowedEventType, entries[1].EventType)
	assert.Equal(t, 2, f.journal.Len())
}

func Test_Catalog_Activity_WithoutJournal(t *testing.T) {
	catalog, err := service.New(store.NewSeeded(time.Now()), nil)
	require.NoError(t, err)

	_, err = catalog.BorrowBook(context.Background(), 2, "X", core.None[int]())
	require.NoError(t, err, "Should work without a journal")

	_, err = catalog.Activity(context.Background(), activitylog.BuildQuery(0, 0))
	assert.ErrorIs(t, err, activitylog.ErrNoJournalConfigured)
}

func Test_Catalog_InstrumentsEveryOperation(t *testing.T) {
	ctx := context.Background()
	f := givenSeededCatalog(t)

	_, err := f.catalog.BorrowBook(ctx, 2, "X", core.None[int]())
	require.NoError(t, err)
	_, err = f.catalog.BorrowBook(ctx, 2, "Y", core.None[int]())
	require.Error(t, err)
	_, err = f.catalog.ListBooks(ctx, nil)
	require.NoError(t, err)

	assert.True(t, f.metrics.HasDurationRecordForMetric(shell.CommandHandlerDurationMetric).
		WithLabel(shell.LogAttrCommandType, "BorrowBook").
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, f.metrics.HasDurationRecordForMetric(shell.CommandHandlerDurationMetric).
		WithLabel(shell.LogAttrCommandType, "BorrowBook").
		WithStatus(shell.StatusRejected).
		Assert())
	assert.True(t, f.metrics.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).
		WithLabel(shell.LogAttrQueryType, "ListBooks").
		Assert())

	assert.True(t, f.logger.HasWarnLog(shell.LogMsgCommandRejected))
	assert.Equal(t, 3, f.tracing.GetSpanRecordCount())
}
