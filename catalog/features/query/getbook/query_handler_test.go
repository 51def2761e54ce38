package getbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/getbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/store"
)

func Test_QueryHandler_Handle_FindsBook(t *testing.T) {
	handler := getbook.NewQueryHandler(store.NewSeeded(time.Now()))

	result, err := handler.Handle(context.Background(), getbook.BuildQuery(4))

	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "Clean Code", result.Book.Title)
	assert.Equal(t, "Robert C. Martin", result.Book.Author)
	assert.True(t, result.Book.Available)
}

func Test_QueryHandler_Handle_ReportsAbsence(t *testing.T) {
	handler := getbook.NewQueryHandler(store.NewSeeded(time.Now()))

	for _, id := range []int{0, -1, 6, 999} {
		result, err := handler.Handle(context.Background(), getbook.BuildQuery(id))

		require.NoError(t, err, "Absence is not an error")
		assert.False(t, result.Found, "id %d", id)
	}
}
