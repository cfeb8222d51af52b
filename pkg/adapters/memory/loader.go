package memory

import (
	"context"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Loader implements ports.GraphLoader over an in-memory state slice.
// Useful for tests and for embedding graphs in host applications.
type Loader struct {
	states []domain.State
}

// NewLoader creates a loader over the given states. Stored order is
// preserved; callers relying on deterministic traversal get the order
// they passed in. Duplicate ids are kept as-is so validation can
// report them.
func NewLoader(states ...domain.State) *Loader {
	return &Loader{states: copyStates(states)}
}

// Load returns a deep copy so callers cannot mutate the loader's data.
func (l *Loader) Load(ctx context.Context) ([]domain.State, error) {
	return copyStates(l.states), nil
}

func copyStates(states []domain.State) []domain.State {
	out := make([]domain.State, len(states))
	for i, s := range states {
		cs := s
		cs.Rules = make([]domain.Rule, len(s.Rules))
		for j, r := range s.Rules {
			cr := r
			if r.Priority != nil {
				p := *r.Priority
				cr.Priority = &p
			}
			cs.Rules[j] = cr
		}
		out[i] = cs
	}
	return out
}
