package factlane

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/factlane/factlane/internal/logging"
	"github.com/factlane/factlane/pkg/adapters/httpapi"
	"github.com/factlane/factlane/pkg/adapters/memory"
	"github.com/factlane/factlane/pkg/dispatch"
	"github.com/factlane/factlane/pkg/domain"
	"github.com/factlane/factlane/pkg/hashing"
	"github.com/factlane/factlane/pkg/ports"
)

// Key prefixes separating the two machines' snapshots in a shared store.
const (
	reviewKeyPrefix = "review:"
	claimKeyPrefix  = "claim:"
)

// Engine is the high-level entry point for the factlane library. It bundles
// the two workflow dispatchers behind one configuration surface and provides
// a simplified API for consumers.
type Engine struct {
	store     ports.SnapshotStore
	publisher ports.ReviewPublisher
	writer    ports.ClaimWriter
	locker    ports.DistributedLocker
	hooks     domain.LifecycleHooks
	captcha   ports.CaptchaValidator
	logger    *slog.Logger

	reviews *dispatch.Dispatcher
	claims  *dispatch.Dispatcher
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore replaces the default in-memory snapshot store.
func WithStore(store ports.SnapshotStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithPublisher replaces the default in-memory review publisher.
func WithPublisher(publisher ports.ReviewPublisher) Option {
	return func(e *Engine) {
		e.publisher = publisher
	}
}

// WithClaimWriter replaces the default in-memory claim writer.
func WithClaimWriter(writer ports.ClaimWriter) Option {
	return func(e *Engine) {
		e.writer = writer
	}
}

// WithLocker enables distributed locking for multi-replica deployments.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(e *Engine) {
		e.locker = locker
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithCaptcha enables captcha validation at the HTTP boundary.
func WithCaptcha(validator ports.CaptchaValidator) Option {
	return func(e *Engine) {
		e.captcha = validator
	}
}

// WithLogger configures the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine. Without options it runs fully in memory, which is
// what tests and local experiments want; production wiring swaps the store
// and sinks via options.
func New(opts ...Option) *Engine {
	e := &Engine{
		store:     memory.NewStore(),
		publisher: memory.NewPublisher(),
		writer:    memory.NewClaimWriter(),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	common := []dispatch.Option{
		dispatch.WithHooks(e.hooks),
		dispatch.WithLogger(e.logger),
	}
	if e.locker != nil {
		common = append(common, dispatch.WithLocker(e.locker))
	}

	// Each machine gets its own key namespace: the same text hashes to the
	// same content hash for both workflows, and a claim snapshot must never
	// shadow the review task for that text.
	e.reviews = dispatch.NewReviewTask(ports.Namespaced(e.store, reviewKeyPrefix), e.publisher, common...)
	e.claims = dispatch.NewClaimCreation(ports.Namespaced(e.store, claimKeyPrefix), e.writer, common...)
	return e
}

// Hash returns the content hash identifying the workflow instance for a
// piece of text.
func Hash(text string) string {
	return hashing.ContentHash(text)
}

// Reviews returns the review-task dispatcher.
func (e *Engine) Reviews() *dispatch.Dispatcher {
	return e.reviews
}

// Claims returns the claim-creation dispatcher.
func (e *Engine) Claims() *dispatch.Dispatcher {
	return e.claims
}

// Store returns the snapshot store backing both dispatchers.
func (e *Engine) Store() ports.SnapshotStore {
	return e.store
}

// DispatchReview applies one event to the review task identified by hash.
func (e *Engine) DispatchReview(ctx context.Context, hash string, ev domain.Event) (*domain.Snapshot, error) {
	return e.reviews.Dispatch(ctx, hash, ev)
}

// DispatchClaim applies one event to the claim creation identified by hash.
func (e *Engine) DispatchClaim(ctx context.Context, hash string, ev domain.Event) (*domain.Snapshot, error) {
	return e.claims.Dispatch(ctx, hash, ev)
}

// Handler returns the JSON API handler exposing both dispatchers.
func (e *Engine) Handler() http.Handler {
	opts := []httpapi.Option{httpapi.WithLogger(e.logger)}
	if e.captcha != nil {
		opts = append(opts, httpapi.WithCaptcha(e.captcha))
	}
	return httpapi.NewHandler(e.reviews, e.claims, opts...)
}
