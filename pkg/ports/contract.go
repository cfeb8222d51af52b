package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a SnapshotStore
// implementation adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	name := "contract-test-" + time.Now().Format("20060102150405")

	snapshot := func(n string) *domain.Snapshot {
		return &domain.Snapshot{
			Name:    n,
			SavedAt: time.Now().UTC().Truncate(time.Second),
			States: []domain.State{
				{ID: "1", Name: "Start", Rules: []domain.Rule{
					{ID: "r1", Condition: "go AND ready", NextState: "2", Priority: domain.Priority(10)},
				}},
				{ID: "2", Name: "Done"},
			},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, snapshot(name))
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, name, loaded.Name)
		require.Len(t, loaded.States, 2)
		assert.Equal(t, "Start", loaded.States[0].Name)
		require.Len(t, loaded.States[0].Rules, 1)
		assert.Equal(t, "go AND ready", loaded.States[0].Rules[0].Condition)
		require.NotNil(t, loaded.States[0].Rules[0].Priority)
		assert.Equal(t, 10, *loaded.States[0].Rules[0].Priority)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		snap := snapshot(name)
		snap.States = snap.States[:1]
		require.NoError(t, store.Save(ctx, snap))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Len(t, loaded.States, 1)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, snapshot(name)))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")
	})

	t.Run("Delete Non-Existent", func(t *testing.T) {
		err := store.Delete(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("List", func(t *testing.T) {
		n1 := name + "-1"
		n2 := name + "-2"
		require.NoError(t, store.Save(ctx, snapshot(n1)))
		require.NoError(t, store.Save(ctx, snapshot(n2)))

		defer func() {
			_ = store.Delete(ctx, n1)
			_ = store.Delete(ctx, n2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, n1)
		assert.Contains(t, names, n2)
	})
}
