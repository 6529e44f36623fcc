package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/factlane/factlane/pkg/adapters/file"
	"github.com/factlane/factlane/pkg/domain"
	"github.com/factlane/factlane/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunSnapshotStoreContract(t, store)
}

func TestFileStore_DefaultPath(t *testing.T) {
	store := file.New("")
	assert.Equal(t, filepath.Join(".factlane", "tasks"), store.BasePath)
}

func TestFileStore_EmptyHash(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", domain.NewSnapshot(domain.StateUnassigned)))
	_, err := store.Load(ctx, "")
	assert.Error(t, err)
}

func TestFileStore_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", domain.NewSnapshot(domain.StateUnassigned)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc.json", entries[0].Name())
}
