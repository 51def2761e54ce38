package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

func seededState(now time.Time) core.State {
	s := core.NewState()
	for _, event := range core.SeedEvents(now) {
		s.Apply(event)
	}

	return s
}

func assertAvailabilityInvariant(t *testing.T, s core.State) {
	t.Helper()

	for _, book := range s.ListBooks(nil) {
		active := 0
		for _, record := range s.ListBorrowings(core.StatusBorrowed, time.Time{}) {
			if record.BookID == book.ID {
				active++
			}
		}

		assert.LessOrEqual(t, active, 1, "book %d must have at most one active borrowing", book.ID)
		assert.Equal(t, active == 0, book.Available, "availability of book %d must match its borrowings", book.ID)
	}
}

func Test_SeedEvents_BuildTheDemonstrationCatalog(t *testing.T) {
	// arrange
	now := time.Now()

	// act
	s := seededState(now)

	// assert
	assert.Len(t, s.ListBooks(nil), 5)
	assert.Len(t, s.ListBorrowings("", now), 2)
	assert.Equal(t, 6, s.NextBookID())
	assert.Equal(t, 3, s.NextBorrowingID())

	book1, found := s.FindBook(1)
	require.True(t, found)
	assert.False(t, book1.Available, "book 1 is on loan")

	returned, found := s.FindBorrowing(2)
	require.True(t, found)
	assert.Equal(t, core.StatusReturned, returned.Status)
	assert.NotNil(t, returned.ReturnDate)

	assertAvailabilityInvariant(t, s)
}

func Test_State_FindBook_ReturnsFalseForUnknownID(t *testing.T) {
	s := seededState(time.Now())

	_, found := s.FindBook(99)

	assert.False(t, found)
}

func Test_State_ListBooks_FiltersByAvailability(t *testing.T) {
	// arrange
	s := seededState(time.Now())
	available := true
	unavailable := false

	// act
	availableBooks := s.ListBooks(&available)
	unavailableBooks := s.ListBooks(&unavailable)

	// assert
	require.Len(t, availableBooks, 4)
	assert.Equal(t, []int{2, 3, 4, 5}, bookIDs(availableBooks), "insertion order is kept")
	require.Len(t, unavailableBooks, 1)
	assert.Equal(t, 1, unavailableBooks[0].ID)
}

func Test_State_ListBorrowings_FiltersByStatus(t *testing.T) {
	// arrange
	now := time.Now()
	s := seededState(now)

	// act
	borrowed := s.ListBorrowings(core.StatusBorrowed, now)
	returned := s.ListBorrowings(core.StatusReturned, now)
	unknown := s.ListBorrowings("lost", now)

	// assert
	require.Len(t, borrowed, 1)
	assert.Equal(t, 1, borrowed[0].ID)
	require.Len(t, returned, 1)
	assert.Equal(t, 2, returned[0].ID)
	assert.Empty(t, unknown)
}

func Test_State_ListBorrowings_DerivesOverdueAtReadTime(t *testing.T) {
	// arrange
	now := time.Now()
	s := seededState(now)

	// act
	overdueNow := s.ListBorrowings(core.StatusOverdue, now)
	overdueLater := s.ListBorrowings(core.StatusOverdue, now.AddDate(0, 0, 10))

	// assert
	assert.Empty(t, overdueNow, "the active seed borrowing is due in 9 days")
	require.Len(t, overdueLater, 1)
	assert.Equal(t, core.StatusBorrowed, overdueLater[0].Status, "overdue is never stored")
}

func Test_State_Apply_BorrowAndReturnRestoresAvailability(t *testing.T) {
	// arrange
	now := time.Now()
	s := seededState(now)

	// act
	s.Apply(core.BuildBookBorrowed(3, 3, "X", core.DueDateFor(now, 7), now))
	book3AfterBorrow, _ := s.FindBook(3)
	s.Apply(core.BuildBookReturned(3, 3, now.Add(time.Hour)))
	book3AfterReturn, _ := s.FindBook(3)

	// assert
	assert.False(t, book3AfterBorrow.Available)
	assert.True(t, book3AfterReturn.Available)

	record, found := s.FindBorrowing(3)
	require.True(t, found)
	assert.Equal(t, core.StatusReturned, record.Status)
	require.NotNil(t, record.ReturnDate)
	assert.Equal(t, core.ToOccurredAt(now.Add(time.Hour)), *record.ReturnDate)
	assertAvailabilityInvariant(t, s)
}

func Test_State_Apply_DeletedIDsAreNeverReused(t *testing.T) {
	// arrange
	now := time.Now()
	s := seededState(now)

	// act
	s.Apply(core.BuildBookDeleted(5, now))

	// assert
	_, found := s.FindBook(5)
	assert.False(t, found)
	assert.Equal(t, 6, s.NextBookID())
	assert.Len(t, s.ListBooks(nil), 4)
}

func Test_State_Apply_ReturnOfOrphanedRecordIsAccepted(t *testing.T) {
	// arrange
	now := time.Now()
	s := seededState(now)
	s.Apply(core.BuildBookDeleted(1, now))

	// act
	s.Apply(core.BuildBookReturned(1, 1, now))

	// assert
	record, found := s.FindBorrowing(1)
	require.True(t, found)
	assert.Equal(t, core.StatusReturned, record.Status)
	_, bookFound := s.ResolveBookForBorrowing(record)
	assert.False(t, bookFound)
}

func Test_State_Apply_IgnoresFailureEvents(t *testing.T) {
	// arrange
	now := time.Now()
	s := seededState(now)
	before := s.Clone()

	// act
	s.Apply(core.BuildBorrowingBookFailed(1, "X", core.ReasonBookNotAvailable, now))

	// assert
	assert.Equal(t, before, s)
}

func Test_State_Clone_SharesNoMemory(t *testing.T) {
	// arrange
	now := time.Now()
	s := seededState(now)

	// act
	clone := s.Clone()
	clone.Apply(core.BuildBookDeleted(2, now))
	clone.Apply(core.BuildBookReturned(1, 1, now))

	// assert
	_, found := s.FindBook(2)
	assert.True(t, found)
	record, _ := s.FindBorrowing(1)
	assert.Equal(t, core.StatusBorrowed, record.Status)
	assert.Nil(t, record.ReturnDate)
}

func Test_BuildBorrowingView_ResolvesBookAndOverdue(t *testing.T) {
	// arrange
	now := time.Now()
	s := seededState(now)
	record, _ := s.FindBorrowing(1)

	// act
	view := core.BuildBorrowingView(s, record, now.AddDate(0, 0, 30))

	// assert
	require.NotNil(t, view.Book)
	assert.Equal(t, "Laskar Pelangi", view.Book.Title)
	assert.True(t, view.Overdue)
}

func bookIDs(books []core.Book) []int {
	ids := make([]int, 0, len(books))
	for _, book := range books {
		ids = append(ids, book.ID)
	}

	return ids
}
