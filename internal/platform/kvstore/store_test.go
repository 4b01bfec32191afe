package kvstore

import (
	"context"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
}

func newTestStore(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedis(client), mr
}

func TestRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	in := []record{{ID: "a", Name: "Uno", Qty: 1.5}, {ID: "b", Name: "Dos", Qty: 2}}
	require.NoError(t, store.Save(ctx, "test-key", in))

	var out []record
	require.NoError(t, store.Load(ctx, "test-key", &out))
	require.Equal(t, in, out)
}

func TestLoadMissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	var out []record
	err := store.Load(context.Background(), "never-written", &out)
	require.ErrorIs(t, err, ErrKeyMissing)
}

func TestLoadCorruptBlob(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, mr.Set("bad-key", "{not json"))

	var out []record
	err := store.Load(context.Background(), "bad-key", &out)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestSeedOnceDoesNotOverwrite(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SeedOnce(ctx, "seeded", []record{{ID: "first"}}))
	require.NoError(t, store.SeedOnce(ctx, "seeded", []record{{ID: "second"}}))

	var out []record
	require.NoError(t, store.Load(ctx, "seeded", &out))
	require.Len(t, out, 1)
	require.Equal(t, "first", out[0].ID)
}

func TestCollectionSeedsDefaultOnFirstLoad(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	logger := slog.Default()

	def := []record{{ID: "seed-1", Name: "Semilla"}}
	col := NewCollection[record](store, "col-key", logger, true)

	got := col.Load(ctx, def)
	require.Equal(t, def, got)

	// The seed must now be durable.
	var persisted []record
	require.NoError(t, store.Load(ctx, "col-key", &persisted))
	require.Equal(t, def, persisted)
}

func TestCollectionMissingKeyWithoutSeedBack(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	col := NewCollection[record](store, "sales-like", slog.Default(), false)
	got := col.Load(ctx, []record{})
	require.Empty(t, got)

	var persisted []record
	err := store.Load(ctx, "sales-like", &persisted)
	require.ErrorIs(t, err, ErrKeyMissing)
}

func TestCollectionRecoversCorruptBlob(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("corrupt-col", "]["))

	def := []record{{ID: "fallback"}}
	col := NewCollection[record](store, "corrupt-col", slog.Default(), false)

	got := col.Load(ctx, def)
	require.Equal(t, def, got)

	// Corrupt blobs are replaced by the default regardless of seed-back.
	var persisted []record
	require.NoError(t, store.Load(ctx, "corrupt-col", &persisted))
	require.Equal(t, def, persisted)
}

func TestCollectionSaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	col := NewCollection[record](store, "overwrite", slog.Default(), false)
	require.NoError(t, col.Save(ctx, []record{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, col.Save(ctx, []record{{ID: "c"}}))

	got := col.Load(ctx, nil)
	require.Len(t, got, 1)
	require.Equal(t, "c", got[0].ID)
}
