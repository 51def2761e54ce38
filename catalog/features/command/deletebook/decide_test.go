package deletebook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/deletebook"
)

func givenSeededState(now time.Time) core.State {
	state := core.NewState()
	for _, event := range core.SeedEvents(now) {
		state.Apply(event)
	}

	return state
}

func Test_Decide_Success_WhenBookIsNotBorrowed(t *testing.T) {
	now := time.Now()

	// book 3 has a returned borrowing only
	for _, bookID := range []core.BookID{2, 3} {
		result := deletebook.Decide(givenSeededState(now), deletebook.BuildCommand(bookID, now))

		require.NoError(t, result.HasError())
		assert.Equal(t, core.BuildBookDeleted(bookID, now), result.Event)
	}
}

func Test_Decide_Error_WhenBookIsBorrowed(t *testing.T) {
	now := time.Now()

	result := deletebook.Decide(givenSeededState(now), deletebook.BuildCommand(1, now))

	assert.ErrorIs(t, result.HasError(), core.ErrInvalidState)
	assert.EqualError(t, result.HasError(), core.ReasonBookCurrentlyBorrowed)
	assert.Equal(t, core.BuildDeletingBookFailed(1, core.ReasonBookCurrentlyBorrowed, now), result.Event)
}

func Test_Decide_Error_WhenBookDoesNotExist(t *testing.T) {
	now := time.Now()

	result := deletebook.Decide(givenSeededState(now), deletebook.BuildCommand(99, now))

	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
	assert.False(t, result.HasEventToApply())
}
