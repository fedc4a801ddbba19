package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/models"
)

func freshSnapshot(ticker string) *models.FinancialSnapshot {
	snap := models.EmptySnapshot(ticker)
	snap.Price = models.Float64(100)
	snap.FetchedAt = time.Now()
	return snap
}

func TestMemoryStore_PutGet(t *testing.T) {
	store := NewMemoryStore(5 * time.Minute)
	ctx := context.Background()

	miss, err := store.Get(ctx, "MSFT")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, store.Put(ctx, freshSnapshot("MSFT")))

	hit, err := store.Get(ctx, "MSFT")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "MSFT", hit.Ticker)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore(50 * time.Millisecond)
	ctx := context.Background()

	stale := freshSnapshot("OLD")
	stale.FetchedAt = time.Now().Add(-time.Second)
	require.NoError(t, store.Put(ctx, stale))

	got, err := store.Get(ctx, "OLD")
	require.NoError(t, err)
	assert.Nil(t, got, "stale entry must read as a miss")
}

func TestMemoryStore_PutOverwrites(t *testing.T) {
	store := NewMemoryStore(5 * time.Minute)
	ctx := context.Background()

	first := freshSnapshot("AAPL")
	require.NoError(t, store.Put(ctx, first))

	second := freshSnapshot("AAPL")
	second.Price = models.Float64(222)
	require.NoError(t, store.Put(ctx, second))

	got, err := store.Get(ctx, "AAPL")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Price)
	assert.Equal(t, 222.0, *got.Price)
}

func TestMemoryStore_DefaultTTL(t *testing.T) {
	store := NewMemoryStore(0)
	assert.Equal(t, common.FreshnessSnapshot, store.ttl)
}

func TestMemoryStore_Close(t *testing.T) {
	store := NewMemoryStore(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, freshSnapshot("GONE")))
	require.NoError(t, store.Close())

	got, err := store.Get(ctx, "GONE")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewSnapshotStore_Backends(t *testing.T) {
	logger := common.NewSilentLogger()

	mem, err := NewSnapshotStore(logger, common.CacheConfig{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, mem)

	def, err := NewSnapshotStore(logger, common.CacheConfig{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, def)

	_, err = NewSnapshotStore(logger, common.CacheConfig{Backend: "redis"})
	assert.Error(t, err)
}
