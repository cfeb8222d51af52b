package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Loader adapts the Loam library to the stategraph GraphLoader
// interface. Each document in the repository is one state: the
// frontmatter carries the id, display name and transition rules, and
// the body is free-form notes that the loader ignores.
type Loader struct {
	Repo *loam.TypedRepository[StateMetadata]
}

// New creates a new Loam adapter from a typed repository.
func New(repo *loam.TypedRepository[StateMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a Loam repository at path and wraps it in a Loader.
// Strict mode keeps numeric types consistent across the JSON and YAML
// adapters, and the loader never writes, so ReadOnly avoids Loam's
// sandbox behavior in dev mode.
func Open(path string) (*Loader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[StateMetadata](repo)), nil
}

// Load returns all states in repository order. An explicit frontmatter
// id wins over the filename-derived document id; collisions between
// the two schemes are an error rather than a silent overwrite.
func (l *Loader) Load(ctx context.Context) ([]domain.State, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	states := make([]domain.State, 0, len(docs))

	for _, doc := range docs {
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: state ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID

		states = append(states, buildState(id, doc.Data))
	}
	return states, nil
}

func buildState(id string, meta StateMetadata) domain.State {
	name := meta.Name
	if name == "" {
		name = id
	}

	rules := make([]domain.Rule, 0, len(meta.Rules))
	for _, lr := range meta.Rules {
		target := lr.To
		if target == "" {
			target = lr.NextState
		}
		rules = append(rules, domain.Rule{
			ID:        lr.ID,
			Condition: lr.Condition,
			NextState: trimExtension(target),
			Priority:  lr.Priority,
			Operation: lr.Operation,
		})
	}

	return domain.State{ID: id, Name: name, Rules: rules}
}

func trimExtension(id string) string {
	if id == "" {
		return id
	}
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

// Watch implements ports.Watchable. Events collapse to a bare signal;
// callers reload the whole graph on any change.
func (l *Loader) Watch(ctx context.Context) (<-chan struct{}, error) {
	events, err := l.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan struct{}, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- struct{}{}:
				case <-ctx.Done():
					return
				default:
					// A reload signal is already pending.
				}
			}
		}
	}()

	return ch, nil
}
