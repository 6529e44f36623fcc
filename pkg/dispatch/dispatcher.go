package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/factlane/factlane/internal/logging"
	"github.com/factlane/factlane/pkg/domain"
	"github.com/factlane/factlane/pkg/machine"
	"github.com/factlane/factlane/pkg/ports"
)

// defaultLockTTL bounds how long a crashed replica can hold a distributed
// lock on one content hash.
const defaultLockTTL = 30 * time.Second

// sideEffect runs after a transition's snapshot write succeeded.
type sideEffect func(ctx context.Context, snap *domain.Snapshot, res machine.Result, hash string) error

// Dispatcher is the caller-facing entry point of a workflow. For each client
// action it loads the persisted snapshot, reconstructs the machine at that
// state, applies exactly one event, persists the result, and runs the
// transition's side effect. No machine state survives between calls; the
// snapshot store is the only durable representation.
type Dispatcher struct {
	def    *machine.Definition
	store  ports.SnapshotStore
	effect sideEffect
	hooks  domain.LifecycleHooks
	locks  *taskLocks
	logger *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	hooks   domain.LifecycleHooks
	locker  ports.DistributedLocker
	lockTTL time.Duration
	logger  *slog.Logger
}

// WithHooks registers lifecycle callbacks for observability.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithLocker enables distributed locking so multiple replicas can safely
// advance the same content hash.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(o *options) {
		o.locker = locker
	}
}

// WithLockTTL overrides the distributed lock TTL.
func WithLockTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.lockTTL = ttl
	}
}

// WithLogger configures a logger for the dispatcher.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newDispatcher(def *machine.Definition, store ports.SnapshotStore, effect sideEffect, opts ...Option) *Dispatcher {
	o := &options{
		lockTTL: defaultLockTTL,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Dispatcher{
		def:    def,
		store:  store,
		effect: effect,
		hooks:  o.hooks,
		locks:  newTaskLocks(o.locker, o.lockTTL, o.logger),
		logger: o.logger,
	}
}

// NewReviewTask builds the dispatcher for the review-task machine. On the
// reported → published transition it creates the permanent report from the
// context's reviewData, then the claim review referencing that report.
func NewReviewTask(store ports.SnapshotStore, publisher ports.ReviewPublisher, opts ...Option) *Dispatcher {
	var d *Dispatcher
	effect := func(ctx context.Context, snap *domain.Snapshot, res machine.Result, hash string) error {
		if res.To != domain.StatePublished {
			return nil
		}
		return d.publish(ctx, snap, publisher, hash)
	}
	d = newDispatcher(machine.ReviewTask(), store, effect, opts...)
	return d
}

// NewClaimCreation builds the dispatcher for the claim-creation machine. On
// the personalityAdded → persisted transition it performs the actual claim
// write.
func NewClaimCreation(store ports.SnapshotStore, writer ports.ClaimWriter, opts ...Option) *Dispatcher {
	effect := func(ctx context.Context, snap *domain.Snapshot, res machine.Result, hash string) error {
		if res.To != domain.StatePersisted {
			return nil
		}
		if _, err := writer.PersistClaim(ctx, snap.Context, hash); err != nil {
			return fmt.Errorf("persist claim: %w", err)
		}
		return nil
	}
	return newDispatcher(machine.CreateClaim(), store, effect, opts...)
}

// Machine returns the dispatcher's machine definition.
func (d *Dispatcher) Machine() *machine.Definition {
	return d.def
}

// Get returns the stored snapshot for a content hash.
func (d *Dispatcher) Get(ctx context.Context, hash string) (*domain.Snapshot, error) {
	return d.store.Load(ctx, hash)
}

// Dispatch applies one event to the workflow instance identified by hash and
// returns the resulting snapshot.
//
// A fresh instance is created in memory at the machine's initial state when
// no snapshot exists yet; it is only persisted if the event is legal there,
// so stray events against unknown hashes leave no trace. An event the
// current state does not recognize is ignored: the stored snapshot is
// returned unchanged and nothing is written.
//
// A persistence failure discards the computed next state and is returned to
// the caller. A side-effect failure after a successful write is returned
// wrapped in domain.ErrSideEffect together with the advanced snapshot: the
// state has moved, only the side effect must be retried.
func (d *Dispatcher) Dispatch(ctx context.Context, hash string, ev domain.Event) (*domain.Snapshot, error) {
	if hash == "" {
		return nil, fmt.Errorf("content hash cannot be empty")
	}

	start := time.Now()
	var result *domain.Snapshot
	err := d.locks.withLock(ctx, hash, func(ctx context.Context) error {
		snap, err := d.store.Load(ctx, hash)
		if err != nil {
			if !errors.Is(err, domain.ErrTaskNotFound) {
				return fmt.Errorf("load snapshot: %w", err)
			}
			snap = d.def.NewSnapshot()
		}

		next, res, err := d.def.Send(snap, ev)
		if err != nil {
			return err
		}

		if !res.Handled {
			d.logger.Debug("event ignored",
				"machine", d.def.Name,
				"hash", hash,
				"event", ev.Type,
				"state", snap.Value,
			)
			if d.hooks.OnEventIgnored != nil {
				d.hooks.OnEventIgnored(ctx, &domain.IgnoredEvent{
					Machine: d.def.Name,
					Hash:    hash,
					Event:   ev.Type,
					State:   snap.Value,
				})
			}
			result = snap
			return nil
		}

		if err := d.store.Save(ctx, hash, next); err != nil {
			// The computed next state is discarded; the caller must never
			// see a success the durable write did not back.
			return fmt.Errorf("save snapshot: %w", err)
		}

		d.logger.Info("transition",
			"machine", d.def.Name,
			"hash", hash,
			"event", ev.Type,
			"from", res.From,
			"to", res.To,
		)
		if d.hooks.OnTransition != nil {
			d.hooks.OnTransition(ctx, &domain.TransitionEvent{
				Machine:   d.def.Name,
				Hash:      hash,
				Event:     ev.Type,
				From:      res.From,
				To:        res.To,
				Timestamp: time.Now(),
				Duration:  time.Since(start),
			})
		}

		result = next

		if d.effect != nil {
			if err := d.effect(ctx, next, res, hash); err != nil {
				return fmt.Errorf("%w: %w", domain.ErrSideEffect, err)
			}
		}
		return nil
	})

	if err != nil && !errors.Is(err, domain.ErrSideEffect) {
		return nil, err
	}
	// On a side-effect failure the advanced snapshot is returned alongside
	// the error so callers can tell "state moved" from "nothing happened".
	return result, err
}

// publish runs the review-task publish side effect: report first, then the
// claim review referencing it.
func (d *Dispatcher) publish(ctx context.Context, snap *domain.Snapshot, publisher ports.ReviewPublisher, hash string) error {
	data, err := domain.ReviewDataFrom(snap.Context)
	if err != nil {
		return err
	}
	review, err := domain.ClaimReviewFrom(snap.Context)
	if err != nil {
		return err
	}

	report, err := publisher.CreateReport(ctx, data, hash)
	if err != nil {
		d.notifyPublish(ctx, hash, "", err)
		return fmt.Errorf("create report: %w", err)
	}

	if err := publisher.CreateClaimReview(ctx, review, report, hash); err != nil {
		d.notifyPublish(ctx, hash, report, err)
		return fmt.Errorf("create claim review: %w", err)
	}

	d.logger.Info("review published",
		"hash", hash,
		"report", report,
	)
	d.notifyPublish(ctx, hash, report, nil)
	return nil
}

func (d *Dispatcher) notifyPublish(ctx context.Context, hash string, report ports.ReportRef, err error) {
	if d.hooks.OnPublish == nil {
		return
	}
	d.hooks.OnPublish(ctx, &domain.PublishEvent{
		Hash:      hash,
		ReportRef: string(report),
		Err:       err,
	})
}
