package ports

import (
	"context"

	"github.com/factlane/factlane/pkg/domain"
)

// SnapshotStore defines the interface for persisting workflow snapshots.
// Snapshots are keyed by the instance's content hash; Save replaces any prior
// snapshot for the key (last-write-wins). Mutual exclusion between concurrent
// writers is enforced above the store, by the dispatcher's task locks.
type SnapshotStore interface {
	// Save persists the snapshot for a given content hash.
	Save(ctx context.Context, hash string, snap *domain.Snapshot) error

	// Load retrieves the snapshot for a given content hash.
	// Returns domain.ErrTaskNotFound if no snapshot exists.
	Load(ctx context.Context, hash string) (*domain.Snapshot, error)

	// Delete removes the snapshot for a given content hash.
	Delete(ctx context.Context, hash string) error

	// List returns the content hashes of all stored snapshots.
	List(ctx context.Context) ([]string, error)
}
