package highlights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/writing-highlighter/internal/types"
)

var sample = []types.Highlight{
	{Text: "quickly", Color: "#ffeb3b", Tooltip: "nice adverb"},
	{Text: "the old man", Color: "#8bc34a"},
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Put(ctx, "w1", sample))
	got, err = store.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, sample, got)

	require.NoError(t, store.Put(ctx, "w1", sample[:1]))
	got, err = store.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMemoryStore_CopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	input := []types.Highlight{{Text: "a", Color: "red"}}
	require.NoError(t, store.Put(ctx, "w1", input))
	input[0].Text = "changed"

	got, err := store.Get(ctx, "w1")
	require.NoError(t, err)
	got[0].Color = "blue"

	again, err := store.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Text)
	assert.Equal(t, "red", again[0].Color)
}

func TestMemoryStore_EmptyID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "  ")
	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)

	err = store.Put(context.Background(), "", sample)
	assert.ErrorAs(t, err, &storeErr)
}
