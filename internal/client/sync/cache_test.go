package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/models"
)

func TestServerCache_ApplyAndReload(t *testing.T) {
	ctx := context.Background()
	_, store := newTestQueue(t)

	cache, err := NewServerCache(ctx, store)
	require.NoError(t, err)

	doc := models.NewDocument("Plan", "", "v1", time.Now())
	doc.SyncVersion = 3
	require.NoError(t, cache.Apply(ctx, doc))

	// наружу отдается копия
	got, ok := cache.Get(doc.Key())
	require.True(t, ok)
	got.Content = "mutated"
	again, _ := cache.Get(doc.Key())
	assert.Equal(t, "v1", again.Content)

	reloaded, err := NewServerCache(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Len())
	cached, ok := reloaded.Get(doc.Key())
	require.True(t, ok)
	assert.Equal(t, int64(3), cached.SyncVersion)
}

func TestServerCache_TombstoneRemoves(t *testing.T) {
	ctx := context.Background()
	_, store := newTestQueue(t)

	cache, err := NewServerCache(ctx, store)
	require.NoError(t, err)

	doc := models.NewDocument("Plan", "", "v1", time.Now())
	require.NoError(t, cache.Apply(ctx, doc))

	gone := doc.Clone()
	gone.SoftDelete(time.Now())
	require.NoError(t, cache.Apply(ctx, gone))

	_, ok := cache.Get(doc.Key())
	assert.False(t, ok)
	assert.NoError(t, cache.Delete(ctx, doc.Key()), "deleting a missing key is a no-op")

	require.NoError(t, cache.Apply(ctx, models.NewFolder("Work", "", "", time.Now())))
	require.NoError(t, cache.Clear(ctx))
	assert.Zero(t, cache.Len())

	reloaded, err := NewServerCache(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, reloaded.Len())
}
