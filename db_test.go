package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *selectionStore {
	t.Helper()
	store, err := openSelectionStore(filepath.Join(t.TempDir(), "selections.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSelectionStore(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	counts, err := store.TopCountries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, counts)

	require.NoError(t, store.Record(ctx, "v1", "Japan"))
	require.NoError(t, store.Record(ctx, "v1", "Japan"))
	require.NoError(t, store.Record(ctx, "v2", "Japan"))
	require.NoError(t, store.Record(ctx, "v2", "UAE"))
	require.NoError(t, store.Record(ctx, "v3", "Oman"))

	counts, err = store.TopCountries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, countryCount{Country: "Japan", Selections: 3, Visitors: 2}, counts[0])
	// ties break alphabetically
	assert.Equal(t, "Oman", counts[1].Country)
}

func TestSelectionStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "selections.db")

	store, err := openSelectionStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, "v1", "Qatar"))
	require.NoError(t, store.Close())

	store, err = openSelectionStore(path)
	require.NoError(t, err)
	defer store.Close()

	counts, err := store.TopCountries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "Qatar", counts[0].Country)
}
