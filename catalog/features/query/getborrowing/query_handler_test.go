package getborrowing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/getborrowing"
	"github.com/AntonStoeckl/library-catalog-go/catalog/store"
)

func Test_QueryHandler_Handle_FindsReturnedRecord(t *testing.T) {
	now := time.Now()
	handler := getborrowing.NewQueryHandler(store.NewSeeded(now))

	result, err := handler.Handle(context.Background(), getborrowing.BuildQuery(2, now))

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "Siti Nurhaliza", result.Borrowing.BorrowerName)
	assert.Equal(t, core.StatusReturned, result.Borrowing.Status)
	require.NotNil(t, result.Borrowing.ReturnDate)
	assert.False(t, result.Borrowing.Overdue, "Should never flag returned records as overdue")
	require.NotNil(t, result.Borrowing.Book)
	assert.Equal(t, 3, result.Borrowing.Book.ID)
}

func Test_QueryHandler_Handle_ReportsAbsence(t *testing.T) {
	now := time.Now()

	result, err := getborrowing.NewQueryHandler(store.NewSeeded(now)).Handle(context.Background(), getborrowing.BuildQuery(3, now))

	require.NoError(t, err)
	assert.False(t, result.Found)
}
