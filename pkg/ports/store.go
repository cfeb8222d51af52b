package ports

import (
	"context"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// SnapshotStore defines the interface for persisting named graph snapshots.
// Saved snapshots are the inputs to comparison: a current graph is diffed
// against a snapshot taken earlier.
type SnapshotStore interface {
	// Save persists the snapshot under its name, overwriting any previous
	// snapshot with the same name.
	Save(ctx context.Context, snap *domain.Snapshot) error

	// Load retrieves a snapshot by name.
	// Returns domain.ErrSnapshotNotFound if the snapshot does not exist.
	Load(ctx context.Context, name string) (*domain.Snapshot, error)

	// Delete removes a snapshot by name. Deleting a missing snapshot
	// returns domain.ErrSnapshotNotFound.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored snapshots.
	List(ctx context.Context) ([]string, error)
}
