package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhaseeb85/stategraph/pkg/adapters/redis"
	"github.com/uhaseeb85/stategraph/pkg/domain"
	"github.com/uhaseeb85/stategraph/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunSnapshotStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	snap := &domain.Snapshot{
		Name:   "ttl-snap",
		States: []domain.State{{ID: "1", Name: "Start"}},
	}

	require.NoError(t, store.Save(ctx, snap))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "ttl-snap")

	// miniredis time is virtual; advance past the TTL. The index is
	// pruned lazily against the wall clock, so only the value itself
	// is checked here.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "ttl-snap")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Snapshot{Name: "snap", States: []domain.State{}}))
	assert.True(t, mr.Exists("custom:snap"))
}
