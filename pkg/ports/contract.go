package ports

import (
	"context"
	"testing"
	"time"

	"github.com/factlane/factlane/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a
// SnapshotStore implementation adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	hash := "contract-test-hash-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		snap := domain.NewSnapshot(domain.StateUnassigned)
		snap.Context[domain.KeyReviewerID] = "u1"
		snap.Context[domain.KeyReviewData] = map[string]any{"summary": "draft text"}

		err := store.Save(ctx, hash, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, hash)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, snap.Value, loaded.Value)
		assert.Equal(t, "u1", loaded.Context[domain.KeyReviewerID])
	})

	t.Run("Round Trip Fidelity", func(t *testing.T) {
		// Saving an unmodified loaded snapshot must yield the same snapshot.
		loaded, err := store.Load(ctx, hash)
		require.NoError(t, err)

		err = store.Save(ctx, hash, loaded)
		require.NoError(t, err)

		again, err := store.Load(ctx, hash)
		require.NoError(t, err)
		assert.Equal(t, loaded, again)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+hash)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("Save Isolation", func(t *testing.T) {
		// Mutating the caller's snapshot after Save must not leak into the store.
		snap := domain.NewSnapshot(domain.StateAssigned.Child(domain.SubstateUndraft))
		snap.Context[domain.KeyReviewerID] = "u1"
		require.NoError(t, store.Save(ctx, hash, snap))

		snap.Context[domain.KeyReviewerID] = "mutated"

		loaded, err := store.Load(ctx, hash)
		require.NoError(t, err)
		assert.Equal(t, "u1", loaded.Context[domain.KeyReviewerID])
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, hash, domain.NewSnapshot(domain.StateUnassigned))
		require.NoError(t, err)

		err = store.Delete(ctx, hash)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, hash)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound, "Load after Delete should return ErrTaskNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := hash + "-1"
		id2 := hash + "-2"
		_ = store.Save(ctx, id1, domain.NewSnapshot(domain.StateUnassigned))
		_ = store.Save(ctx, id2, domain.NewSnapshot(domain.StateNotStarted))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		hashes, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, hashes, id1)
		assert.Contains(t, hashes, id2)
	})
}
