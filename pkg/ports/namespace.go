package ports

import (
	"context"
	"strings"

	"github.com/factlane/factlane/pkg/domain"
)

// namespacedStore prefixes every key before delegating to the inner store.
type namespacedStore struct {
	inner  SnapshotStore
	prefix string
}

// Namespaced wraps a store so all of its keys carry the given prefix.
// Independent workflows can then share one physical store without colliding
// on the same content hash. List returns only this namespace's keys, with
// the prefix stripped.
func Namespaced(store SnapshotStore, prefix string) SnapshotStore {
	return &namespacedStore{inner: store, prefix: prefix}
}

func (s *namespacedStore) Save(ctx context.Context, hash string, snap *domain.Snapshot) error {
	return s.inner.Save(ctx, s.prefix+hash, snap)
}

func (s *namespacedStore) Load(ctx context.Context, hash string) (*domain.Snapshot, error) {
	return s.inner.Load(ctx, s.prefix+hash)
}

func (s *namespacedStore) Delete(ctx context.Context, hash string) error {
	return s.inner.Delete(ctx, s.prefix+hash)
}

func (s *namespacedStore) List(ctx context.Context) ([]string, error) {
	keys, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(k, s.prefix) {
			out = append(out, strings.TrimPrefix(k, s.prefix))
		}
	}
	return out, nil
}
