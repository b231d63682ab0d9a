package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSetRejectsEmptyID(t *testing.T) {
	storage := NewLocalStorage()

	err := storage.Set(Sale{Product: "Widget", Amount: 10, Date: "2024-01-01"})
	assert.ErrorIs(t, err, ErrEmptyID)
	assert.Equal(t, 0, storage.Len())
}

func TestLocalStorageLenTracksSetAndDelete(t *testing.T) {
	storage := NewLocalStorage()
	assert.Equal(t, 0, storage.Len())

	require.NoError(t, storage.Set(Sale{ID: "1", Product: "Widget", Amount: 10, Date: "2024-01-01"}))
	require.NoError(t, storage.Set(Sale{ID: "2", Product: "Gadget", Amount: 20, Date: "2024-01-02"}))
	assert.Equal(t, 2, storage.Len())

	// Replacing an existing id must not grow the count.
	require.NoError(t, storage.Set(Sale{ID: "1", Product: "Widget Pro", Amount: 12, Date: "2024-01-01"}))
	assert.Equal(t, 2, storage.Len())

	require.NoError(t, storage.Delete("1"))
	assert.Equal(t, 1, storage.Len())
	assert.ErrorIs(t, storage.Delete("1"), ErrNotFound)
	assert.Equal(t, 1, storage.Len())
}

func TestLocalStorageListPreservesInsertionOrderOnReplace(t *testing.T) {
	storage := NewLocalStorage()
	require.NoError(t, storage.Set(Sale{ID: "1", Product: "A", Amount: 1, Date: "2024-01-01"}))
	require.NoError(t, storage.Set(Sale{ID: "2", Product: "B", Amount: 2, Date: "2024-01-01"}))
	require.NoError(t, storage.Set(Sale{ID: "1", Product: "A2", Amount: 3, Date: "2024-01-01"}))

	page, err := storage.List(PageRequest{Page: 1, Limit: 10, SortField: SortByDate, SortDirection: SortAsc})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "A2", page.Data[0].Product, "equal sort keys keep insertion order")
	assert.Equal(t, "B", page.Data[1].Product)
}
