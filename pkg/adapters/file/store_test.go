package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhaseeb85/stategraph/pkg/adapters/file"
	"github.com/uhaseeb85/stategraph/pkg/domain"
	"github.com/uhaseeb85/stategraph/pkg/ports"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunSnapshotStoreContract(t, store)
}

func TestFileStore_ContractYAML(t *testing.T) {
	store := file.New(t.TempDir(), file.WithFormat(domain.FormatYAML))
	ports.RunSnapshotStoreContract(t, store)
}

func TestFileStore_RejectsPathTraversal(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	err := store.Save(ctx, &domain.Snapshot{Name: "../escape"})
	require.Error(t, err)

	_, err = store.Load(ctx, "a/b")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestFileStore_ListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Snapshot{Name: "keep", States: []domain.State{}}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-leftover-123.json"), []byte("{}"), 0644))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, names)
}
