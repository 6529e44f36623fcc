package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/factlane/factlane/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// taskLocks serializes event processing per content hash. It uses reference
// counting to garbage collect unused locks, and optionally wraps a
// distributed locker so replicas of the service do not race on one hash.
type taskLocks struct {
	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker  ports.DistributedLocker // Optional distributed locker
	lockTTL time.Duration
	logger  *slog.Logger
}

func newTaskLocks(locker ports.DistributedLocker, ttl time.Duration, logger *slog.Logger) *taskLocks {
	return &taskLocks{
		locks:   make(map[string]*lockEntry),
		locker:  locker,
		lockTTL: ttl,
		logger:  logger,
	}
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(hash) after
// unlocking.
func (t *taskLocks) acquire(hash string) *lockEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.locks[hash]
	if !exists {
		entry = &lockEntry{}
		t.locks[hash] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches
// zero.
func (t *taskLocks) release(hash string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.locks[hash]
	if !exists {
		return // Should not happen if paired correctly
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(t.locks, hash)
	}
}

// withLock executes fn while holding the lock for the content hash.
func (t *taskLocks) withLock(ctx context.Context, hash string, fn func(context.Context) error) error {
	entry := t.acquire(hash)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		t.release(hash)
	}()

	if t.locker != nil {
		unlock, err := t.locker.Lock(ctx, hash, t.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				t.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"hash", hash,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
