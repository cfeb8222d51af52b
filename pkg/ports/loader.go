package ports

import (
	"context"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// GraphLoader defines how the analyzer retrieves state definitions.
// This allows the storage layer (Loam, CSV, Memory) to be decoupled.
type GraphLoader interface {
	// Load returns all state definitions in stored order.
	Load(ctx context.Context) ([]domain.State, error)
}

// Watchable defines an interface for loaders that can notify about backend changes.
// This is typically used for hot-reload or dev-mode functionality.
type Watchable interface {
	// Watch returns a channel that is signaled when the underlying graph changes.
	// It abstracts away the specific event details, signaling only that a reload is required.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
