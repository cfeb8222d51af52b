package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Store implements ports.SnapshotStore using the local filesystem.
// Snapshots are stored one file per snapshot in a configured directory.
type Store struct {
	BasePath string
	Format   domain.Format
}

type Option func(*Store)

// WithFormat sets the on-disk encoding. Defaults to JSON.
func WithFormat(f domain.Format) Option {
	return func(s *Store) {
		s.Format = f
	}
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".stategraph/snapshots".
func New(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = filepath.Join(".stategraph", "snapshots")
	}
	store := &Store{BasePath: basePath, Format: domain.FormatJSON}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) ext() string {
	if s.Format == domain.FormatYAML {
		return ".yaml"
	}
	return ".json"
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BasePath, name+s.ext())
}

func validName(name string) error {
	if name == "" {
		return fmt.Errorf("snapshot name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("snapshot name %q must not contain path separators", name)
	}
	return nil
}

// Save persists the snapshot atomically: write to a temp file in the
// same directory, fsync, then rename over the destination.
func (s *Store) Save(ctx context.Context, snap *domain.Snapshot) error {
	if err := validName(snap.Name); err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure snapshot directory: %w", err)
	}

	data, err := domain.EncodeSnapshot(snap, s.Format)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+snap.Name+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(snap.Name)); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load retrieves a snapshot from its file.
func (s *Store) Load(ctx context.Context, name string) (*domain.Snapshot, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	snap, err := domain.DecodeSnapshot(data, s.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %q: %w", name, err)
	}
	return snap, nil
}

// Delete removes a snapshot file.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}

	err := os.Remove(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ErrSnapshotNotFound
		}
		return fmt.Errorf("failed to delete snapshot file: %w", err)
	}
	return nil
}

// List returns stored snapshot names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "tmp-") || filepath.Ext(name) != s.ext() {
			continue
		}
		names = append(names, strings.TrimSuffix(name, s.ext()))
	}
	return names, nil
}
